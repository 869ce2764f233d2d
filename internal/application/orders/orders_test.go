package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	apppricing "github.com/enescc00/b2bsitesibitmis-sub001/internal/application/pricing"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// In-memory fakes shared by the create and lifecycle tests. The tx runner
// hands the same fakes to the callback, so "transactional" writes land in
// the same maps the assertions read.

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) GetByUserID(string) (*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) ListBySalesRep(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error { return nil }
func (f *fakeProductRepo) AdjustStock(productID string, delta int64) error {
	p, ok := f.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock += delta
	return nil
}
func (f *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(string) error { return nil }

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	cp.Items = nil
	f.orders[o.ID] = &cp
	return nil
}
func (f *fakeOrderRepo) CreateItem(item *entity.OrderItem) error {
	o := f.orders[item.OrderID]
	o.Items = append(o.Items, *item)
	return nil
}
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return f.orders[id], nil }
func (f *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}
func (f *fakeOrderRepo) List(int, int) ([]*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) ListByCustomer(string, int, int) ([]*entity.Order, error) {
	return nil, nil
}

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (f *fakeLedgerRepo) Create(e *entity.LedgerEntry) error {
	f.entries = append(f.entries, e)
	return nil
}
func (f *fakeLedgerRepo) LastBalance(customerID string) (decimal.Decimal, error) {
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].CustomerID == customerID {
			return f.entries[i].Balance, nil
		}
	}
	return decimal.Zero, nil
}
func (f *fakeLedgerRepo) ListByCustomer(string, int, int) ([]*entity.LedgerEntry, error) {
	return f.entries, nil
}

type fakePriceListRepo struct {
	def  *entity.PriceList
	byID map[string]*entity.PriceList
}

func (f *fakePriceListRepo) Create(*entity.PriceList) error { return nil }
func (f *fakePriceListRepo) GetByID(id string) (*entity.PriceList, error) {
	return f.byID[id], nil
}
func (f *fakePriceListRepo) GetDefault() (*entity.PriceList, error) { return f.def, nil }
func (f *fakePriceListRepo) Update(*entity.PriceList) error { return nil }
func (f *fakePriceListRepo) SetDefault(string) error { return nil }
func (f *fakePriceListRepo) List(int, int) ([]*entity.PriceList, error) { return nil, nil }
func (f *fakePriceListRepo) Delete(string) error { return nil }

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (f *fakeSettingsRepo) Get() (*entity.Settings, error) { return f.settings, nil }
func (f *fakeSettingsRepo) Upsert(*entity.Settings) error { return nil }

type fakeTxRunner struct {
	products *fakeProductRepo
	orders   *fakeOrderRepo
	ledger   *fakeLedgerRepo
}

func (f *fakeTxRunner) RunOrder(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	return fn(f.products, f.orders, f.ledger)
}

type world struct {
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	orders    *fakeOrderRepo
	ledger    *fakeLedgerRepo
	createUC  *CreateOrderUseCase
	uc        *UseCase
}

func newWorld(t *testing.T) *world {
	t.Helper()
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", Name: "Acme", PaymentTerms: entity.PaymentCash},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", SKU: "P-1", Name: "Valve", CategoryID: "cat-1",
			Price: decimal.NewFromInt(100), Stock: 10, IsActive: true},
	}}
	orderStore := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	ledger := &fakeLedgerRepo{}
	priceLists := &fakePriceListRepo{
		def: &entity.PriceList{
			ID:   "pl-default",
			Name: "default",
			CategoryDiscounts: []entity.CategoryDiscount{
				{CategoryID: "cat-1", DiscountPercentage: decimal.NewFromInt(10)},
			},
		},
		byID: map[string]*entity.PriceList{},
	}
	quoter := apppricing.NewQuoter(priceLists, &fakeSettingsRepo{})
	tx := &fakeTxRunner{products: products, orders: orderStore, ledger: ledger}
	return &world{
		customers: customers,
		products:  products,
		orders:    orderStore,
		ledger:    ledger,
		createUC:  NewCreateOrderUseCase(tx, customers, products, quoter),
		uc:        NewUseCase(orderStore, tx),
	}
}

func TestCreateOrder_ResolvesPricesAndDebitsLedger(t *testing.T) {
	w := newWorld(t)

	out, err := w.createUC.Create(context.Background(), "cust-1", dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 2}},
	})
	require.NoError(t, err)

	// 100 with the 10% category discount, resolved server-side.
	require.Len(t, out.Items, 1)
	assert.Equal(t, "90", out.Items[0].UnitPrice.String())
	assert.Equal(t, "180", out.Total.String())
	assert.Equal(t, entity.OrderPending, out.Status)

	// Stock moved and the ledger carries the debit.
	assert.Equal(t, int64(8), w.products.products["prod-1"].Stock)
	require.Len(t, w.ledger.entries, 1)
	assert.Equal(t, entity.LedgerDebit, w.ledger.entries[0].EntryType)
	assert.Equal(t, "180", w.ledger.entries[0].Balance.String())
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	w := newWorld(t)

	_, err := w.createUC.Create(context.Background(), "cust-1", dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 11}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), w.products.products["prod-1"].Stock)
	assert.Empty(t, w.ledger.entries)
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	w := newWorld(t)

	_, err := w.createUC.Create(context.Background(), "nobody", dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_CancelRestocksAndCredits(t *testing.T) {
	w := newWorld(t)
	out, err := w.createUC.Create(context.Background(), "cust-1", dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 2}},
	})
	require.NoError(t, err)

	updated, err := w.uc.UpdateStatus(context.Background(), out.ID, entity.OrderCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, updated.Status)

	// Stock back, debit reversed.
	assert.Equal(t, int64(10), w.products.products["prod-1"].Stock)
	require.Len(t, w.ledger.entries, 2)
	assert.Equal(t, entity.LedgerCredit, w.ledger.entries[1].EntryType)
	assert.Equal(t, "0", w.ledger.entries[1].Balance.String())
}

func TestUpdateStatus_CancelAfterShipConflicts(t *testing.T) {
	w := newWorld(t)
	out, err := w.createUC.Create(context.Background(), "cust-1", dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = w.uc.UpdateStatus(context.Background(), out.ID, entity.OrderShipped)
	require.NoError(t, err)

	_, err = w.uc.UpdateStatus(context.Background(), out.ID, entity.OrderCancelled)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_DeliveredIsTerminal(t *testing.T) {
	w := newWorld(t)
	out, err := w.createUC.Create(context.Background(), "cust-1", dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = w.uc.UpdateStatus(context.Background(), out.ID, entity.OrderDelivered)
	require.NoError(t, err)

	_, err = w.uc.UpdateStatus(context.Background(), out.ID, entity.OrderConfirmed)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGetByID_OwnershipEnforced(t *testing.T) {
	w := newWorld(t)
	out, err := w.createUC.Create(context.Background(), "cust-1", dto.CreateOrderRequest{
		Items: []dto.OrderItemInput{{ProductID: "prod-1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = w.uc.GetByID(out.ID, "cust-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := w.uc.GetByID(out.ID, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)
}
