package returns

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

// UseCase covers return requests and their lifecycle. Approval credits the
// refund to the customer's ledger.
type UseCase struct {
	returnRepo repository.ReturnRepository
	orderRepo  repository.OrderRepository
	txRunner   TxRunner
}

// NewUseCase builds the use case.
func NewUseCase(returnRepo repository.ReturnRepository, orderRepo repository.OrderRepository, txRunner TxRunner) *UseCase {
	return &UseCase{returnRepo: returnRepo, orderRepo: orderRepo, txRunner: txRunner}
}

// Create opens a return request for a delivered order owned by customerID.
// The refund may cover part of the order but never more than its total.
func (uc *UseCase) Create(customerID string, in dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.RefundAmount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	if order.Status != entity.OrderDelivered {
		return nil, domain.ErrConflict
	}
	if in.RefundAmount.GreaterThan(order.Total) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ret := &entity.Return{
		ID:           uuid.New().String(),
		OrderID:      order.ID,
		CustomerID:   customerID,
		Reason:       in.Reason,
		Status:       entity.ReturnRequested,
		RefundAmount: in.RefundAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.returnRepo.Create(ret); err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// GetByID returns one return request; customers only see their own.
func (uc *UseCase) GetByID(id, requesterCustomerID string) (*dto.ReturnResponse, error) {
	ret, err := uc.returnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, nil
	}
	if requesterCustomerID != "" && ret.CustomerID != requesterCustomerID {
		return nil, domain.ErrForbidden
	}
	return toReturnResponse(ret), nil
}

// List returns return requests: all for staff, own for customers.
func (uc *UseCase) List(customerID string, limit, offset int) (*dto.ReturnListResponse, error) {
	var rets []*entity.Return
	var err error
	if customerID != "" {
		rets, err = uc.returnRepo.ListByCustomer(customerID, limit, offset)
	} else {
		rets, err = uc.returnRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReturnResponse, 0, len(rets))
	for _, r := range rets {
		items = append(items, *toReturnResponse(r))
	}
	return &dto.ReturnListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus transitions a return. Only requested returns move; approval
// writes the ledger credit atomically with the status change.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.ReturnResponse, error) {
	if !entity.ValidReturnStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	ret, err := uc.returnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, nil
	}
	switch ret.Status {
	case entity.ReturnRequested:
		// requested -> approved | rejected
		if status != entity.ReturnApproved && status != entity.ReturnRejected {
			return nil, domain.ErrConflict
		}
	case entity.ReturnApproved:
		// approved -> completed
		if status != entity.ReturnCompleted {
			return nil, domain.ErrConflict
		}
	default:
		return nil, domain.ErrConflict
	}

	ret.Status = status
	ret.UpdatedAt = time.Now()

	if status == entity.ReturnApproved {
		err = uc.txRunner.RunReturn(ctx, func(
			returnRepo repository.ReturnRepository,
			ledgerRepo repository.LedgerRepository,
		) error {
			if err := returnRepo.Update(ret); err != nil {
				return err
			}
			balance, err := ledgerRepo.LastBalance(ret.CustomerID)
			if err != nil {
				return err
			}
			return ledgerRepo.Create(&entity.LedgerEntry{
				ID:          uuid.New().String(),
				CustomerID:  ret.CustomerID,
				EntryType:   entity.LedgerCredit,
				Amount:      ret.RefundAmount,
				Description: fmt.Sprintf("return %s approved", ret.ID),
				Source:      entity.LedgerSourceReturn,
				SourceID:    ret.ID,
				Balance:     balance.Sub(ret.RefundAmount),
				CreatedAt:   time.Now(),
			})
		})
		if err != nil {
			return nil, err
		}
	} else {
		if err := uc.returnRepo.Update(ret); err != nil {
			return nil, err
		}
	}
	return toReturnResponse(ret), nil
}

func toReturnResponse(r *entity.Return) *dto.ReturnResponse {
	if r == nil {
		return nil
	}
	return &dto.ReturnResponse{
		ID:           r.ID,
		OrderID:      r.OrderID,
		CustomerID:   r.CustomerID,
		Reason:       r.Reason,
		Status:       r.Status,
		RefundAmount: r.RefundAmount,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
