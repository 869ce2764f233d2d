package returns

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

type fakeReturnRepo struct {
	returns map[string]*entity.Return
}

func (f *fakeReturnRepo) Create(r *entity.Return) error {
	f.returns[r.ID] = r
	return nil
}
func (f *fakeReturnRepo) GetByID(id string) (*entity.Return, error) { return f.returns[id], nil }
func (f *fakeReturnRepo) Update(r *entity.Return) error {
	f.returns[r.ID] = r
	return nil
}
func (f *fakeReturnRepo) List(int, int) ([]*entity.Return, error) { return nil, nil }
func (f *fakeReturnRepo) ListByCustomer(string, int, int) ([]*entity.Return, error) {
	return nil, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (f *fakeOrderRepo) Create(*entity.Order) error               { return nil }
func (f *fakeOrderRepo) CreateItem(*entity.OrderItem) error       { return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return f.orders[id], nil }
func (f *fakeOrderRepo) UpdateStatus(string, string) error        { return nil }
func (f *fakeOrderRepo) List(int, int) ([]*entity.Order, error)   { return nil, nil }
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

type fakeTxRunner struct {
	returns *fakeReturnRepo
	ledger  *fakeLedgerRepo
}

func (f *fakeTxRunner) RunReturn(_ context.Context, fn func(
	returnRepo repository.ReturnRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	return fn(f.returns, f.ledger)
}

func newUseCase(orderStatus string) (*UseCase, *fakeLedgerRepo) {
	returnStore := &fakeReturnRepo{returns: map[string]*entity.Return{}}
	orderStore := &fakeOrderRepo{orders: map[string]*entity.Order{
		"ord-1": {ID: "ord-1", Number: "SO-1", CustomerID: "cust-1",
			Status: orderStatus, Total: decimal.NewFromInt(500)},
	}}
	ledger := &fakeLedgerRepo{}
	tx := &fakeTxRunner{returns: returnStore, ledger: ledger}
	return NewUseCase(returnStore, orderStore, tx), ledger
}

func TestCreateReturn_DeliveredOrderOnly(t *testing.T) {
	uc, _ := newUseCase(entity.OrderShipped)

	_, err := uc.Create("cust-1", dto.CreateReturnRequest{
		OrderID:      "ord-1",
		Reason:       "damaged",
		RefundAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateReturn_OwnershipEnforced(t *testing.T) {
	uc, _ := newUseCase(entity.OrderDelivered)

	_, err := uc.Create("cust-2", dto.CreateReturnRequest{
		OrderID:      "ord-1",
		RefundAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateReturn_RefundCappedAtOrderTotal(t *testing.T) {
	uc, _ := newUseCase(entity.OrderDelivered)

	_, err := uc.Create("cust-1", dto.CreateReturnRequest{
		OrderID:      "ord-1",
		RefundAmount: decimal.NewFromInt(501),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReturnLifecycle_ApprovalCreditsLedger(t *testing.T) {
	uc, ledger := newUseCase(entity.OrderDelivered)

	ret, err := uc.Create("cust-1", dto.CreateReturnRequest{
		OrderID:      "ord-1",
		Reason:       "wrong size",
		RefundAmount: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReturnRequested, ret.Status)

	approved, err := uc.UpdateStatus(context.Background(), ret.ID, entity.ReturnApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.ReturnApproved, approved.Status)

	require.Len(t, ledger.entries, 1)
	assert.Equal(t, entity.LedgerCredit, ledger.entries[0].EntryType)
	assert.Equal(t, "150", ledger.entries[0].Amount.String())
	assert.Equal(t, "-150", ledger.entries[0].Balance.String())

	completed, err := uc.UpdateStatus(context.Background(), ret.ID, entity.ReturnCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.ReturnCompleted, completed.Status)
}

func TestReturnLifecycle_RejectedIsTerminal(t *testing.T) {
	uc, ledger := newUseCase(entity.OrderDelivered)

	ret, err := uc.Create("cust-1", dto.CreateReturnRequest{
		OrderID:      "ord-1",
		RefundAmount: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), ret.ID, entity.ReturnRejected)
	require.NoError(t, err)
	assert.Empty(t, ledger.entries)

	_, err = uc.UpdateStatus(context.Background(), ret.ID, entity.ReturnCompleted)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReturnLifecycle_RequestedCannotComplete(t *testing.T) {
	uc, _ := newUseCase(entity.OrderDelivered)

	ret, err := uc.Create("cust-1", dto.CreateReturnRequest{
		OrderID:      "ord-1",
		RefundAmount: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), ret.ID, entity.ReturnCompleted)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
