package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// UseCase covers inventory component CRUD and quantity adjustments.
type UseCase struct {
	repo repository.InventoryItemRepository
}

// NewUseCase builds the use case.
func NewUseCase(repo repository.InventoryItemRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create adds an inventory component.
func (uc *UseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchaseType == entity.PurchaseCash && in.TermMonths != 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Code:         in.Code,
		UnitPrice:    in.UnitPrice,
		Currency:     in.Currency,
		PurchaseType: in.PurchaseType,
		TermMonths:   in.TermMonths,
		Quantity:     in.Quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toResponse(item), nil
}

// GetByID returns one component.
func (uc *UseCase) GetByID(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toResponse(item), nil
}

// List returns components with pagination.
func (uc *UseCase) List(limit, offset int) (*dto.InventoryListResponse, error) {
	items, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toResponse(it))
	}
	return &dto.InventoryListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update changes a component's acquisition data.
func (uc *UseCase) Update(id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.Currency != nil {
		item.Currency = *in.Currency
	}
	if in.PurchaseType != nil {
		item.PurchaseType = *in.PurchaseType
	}
	if in.TermMonths != nil {
		item.TermMonths = *in.TermMonths
	}
	if item.PurchaseType == entity.PurchaseCash && item.TermMonths != 0 {
		return nil, domain.ErrInvalidInput
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toResponse(item), nil
}

// AdjustQuantity changes quantity on hand by a delta.
func (uc *UseCase) AdjustQuantity(id string, delta int64) error {
	if delta == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.AdjustQuantity(id, delta)
}

// Delete removes a component.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Code:         it.Code,
		UnitPrice:    it.UnitPrice,
		Currency:     it.Currency,
		PurchaseType: it.PurchaseType,
		TermMonths:   it.TermMonths,
		Quantity:     it.Quantity,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
