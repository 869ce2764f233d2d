package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// UseCase covers order queries and lifecycle transitions.
type UseCase struct {
	orderRepo repository.OrderRepository
	txRunner  TxRunner
}

// NewUseCase builds the use case.
func NewUseCase(orderRepo repository.OrderRepository, txRunner TxRunner) *UseCase {
	return &UseCase{orderRepo: orderRepo, txRunner: txRunner}
}

// GetByID returns one order. When requesterCustomerID is non-empty the
// order must belong to that customer.
func (uc *UseCase) GetByID(id, requesterCustomerID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if requesterCustomerID != "" && order.CustomerID != requesterCustomerID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// List returns orders: all of them for staff, the customer's own when
// customerID is non-empty.
func (uc *UseCase) List(customerID string, limit, offset int) (*dto.OrderListResponse, error) {
	var orders []*entity.Order
	var err error
	if customerID != "" {
		orders, err = uc.orderRepo.ListByCustomer(customerID, limit, offset)
	} else {
		orders, err = uc.orderRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus moves an order through its lifecycle. Cancelling an order
// that has not shipped restocks its items and reverses the ledger debit in
// one transaction. Delivered and cancelled are terminal.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if order.Status == entity.OrderDelivered || order.Status == entity.OrderCancelled {
		return nil, domain.ErrConflict
	}
	if status == order.Status {
		return toOrderResponse(order), nil
	}

	if status == entity.OrderCancelled {
		if order.Status == entity.OrderShipped {
			return nil, domain.ErrConflict
		}
		err = uc.txRunner.RunOrder(ctx, func(
			productRepo repository.ProductRepository,
			orderRepo repository.OrderRepository,
			ledgerRepo repository.LedgerRepository,
		) error {
			for _, item := range order.Items {
				if err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
			if err := orderRepo.UpdateStatus(order.ID, entity.OrderCancelled); err != nil {
				return err
			}
			balance, err := ledgerRepo.LastBalance(order.CustomerID)
			if err != nil {
				return err
			}
			return ledgerRepo.Create(&entity.LedgerEntry{
				ID:          uuid.New().String(),
				CustomerID:  order.CustomerID,
				EntryType:   entity.LedgerCredit,
				Amount:      order.Total,
				Description: fmt.Sprintf("order %s cancelled", order.Number),
				Source:      entity.LedgerSourceOrder,
				SourceID:    order.ID,
				Balance:     balance.Sub(order.Total),
				CreatedAt:   time.Now(),
			})
		})
		if err != nil {
			return nil, err
		}
	} else {
		if err := uc.orderRepo.UpdateStatus(order.ID, status); err != nil {
			return nil, err
		}
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		Total:      o.Total,
		Note:       o.Note,
		Items:      items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
