package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	apppricing "github.com/enescc00/b2bsitesibitmis-sub001/internal/application/pricing"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// CreateOrderUseCase places an order: prices are resolved server-side
// against one pricing snapshot, stock is decremented and the total is
// debited to the customer's ledger, all in one transaction.
type CreateOrderUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	quoter       *apppricing.Quoter
}

// NewCreateOrderUseCase builds the use case.
func NewCreateOrderUseCase(txRunner TxRunner, customerRepo repository.CustomerRepository, productRepo repository.ProductRepository, quoter *apppricing.Quoter) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		quoter:       quoter,
	}
}

// Create places the order for customerID.
func (uc *CreateOrderUseCase) Create(ctx context.Context, customerID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if customerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	snapshot, err := uc.quoter.SnapshotFor(customer)
	if err != nil {
		return nil, err
	}

	// Read-only validation and price resolution outside the transaction.
	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		Number:     fmt.Sprintf("SO-%d", now.Unix()),
		CustomerID: customer.ID,
		Status:     entity.OrderPending,
		Note:       in.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	var total decimal.Decimal
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, domain.ErrNotFound
		}
		if product.Stock < item.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		price, err := snapshot.Quote(product)
		if err != nil {
			return nil, err
		}
		subtotal := price.Mul(decimal.NewFromInt(item.Quantity))
		total = total.Add(subtotal)
		order.Items = append(order.Items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
			Subtotal:  subtotal,
		})
	}
	order.Total = total

	err = uc.txRunner.RunOrder(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		// Stock decrements re-check availability under the transaction;
		// a race with a concurrent order rolls everything back.
		for _, item := range order.Items {
			if err := productRepo.AdjustStock(item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for i := range order.Items {
			if err := orderRepo.CreateItem(&order.Items[i]); err != nil {
				return err
			}
		}
		balance, err := ledgerRepo.LastBalance(customer.ID)
		if err != nil {
			return err
		}
		return ledgerRepo.Create(&entity.LedgerEntry{
			ID:          uuid.New().String(),
			CustomerID:  customer.ID,
			EntryType:   entity.LedgerDebit,
			Amount:      order.Total,
			Description: fmt.Sprintf("order %s", order.Number),
			Source:      entity.LedgerSourceOrder,
			SourceID:    order.ID,
			Balance:     balance.Add(order.Total),
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}
