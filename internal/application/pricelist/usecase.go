// Package pricelist covers administration of price lists: the named rule
// bundles the price resolver applies per customer.
package pricelist

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// UseCase covers price list CRUD and default selection.
type UseCase struct {
	repo repository.PriceListRepository
}

// NewUseCase builds the use case.
func NewUseCase(repo repository.PriceListRepository) *UseCase {
	return &UseCase{repo: repo}
}

func percentInRange(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}

// Create adds a price list. Percentages must sit in 0..100 and product
// override prices must not be negative.
func (uc *UseCase) Create(in dto.CreatePriceListRequest) (*dto.PriceListResponse, error) {
	if !percentInRange(in.GlobalDiscountPercentage) {
		return nil, domain.ErrInvalidInput
	}
	for _, pp := range in.ProductPrices {
		if pp.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	for _, cd := range in.CategoryDiscounts {
		if !percentInRange(cd.DiscountPercentage) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	list := &entity.PriceList{
		ID:                       uuid.New().String(),
		Name:                     in.Name,
		ProductPrices:            toProductPrices(in.ProductPrices),
		CategoryDiscounts:        toCategoryDiscounts(in.CategoryDiscounts),
		GlobalDiscountPercentage: in.GlobalDiscountPercentage,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if err := uc.repo.Create(list); err != nil {
		return nil, err
	}
	if in.IsDefault {
		if err := uc.repo.SetDefault(list.ID); err != nil {
			return nil, err
		}
		list.IsDefault = true
	}
	return toResponse(list), nil
}

// GetByID returns one price list.
func (uc *UseCase) GetByID(id string) (*dto.PriceListResponse, error) {
	list, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}
	return toResponse(list), nil
}

// List returns price lists with pagination.
func (uc *UseCase) List(limit, offset int) (*dto.PriceListListResponse, error) {
	lists, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceListResponse, 0, len(lists))
	for _, l := range lists {
		items = append(items, *toResponse(l))
	}
	return &dto.PriceListListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update changes a price list's rules.
func (uc *UseCase) Update(id string, in dto.UpdatePriceListRequest) (*dto.PriceListResponse, error) {
	list, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}
	if in.Name != nil {
		list.Name = *in.Name
	}
	if in.ProductPrices != nil {
		for _, pp := range in.ProductPrices {
			if pp.Price.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
		}
		list.ProductPrices = toProductPrices(in.ProductPrices)
	}
	if in.CategoryDiscounts != nil {
		for _, cd := range in.CategoryDiscounts {
			if !percentInRange(cd.DiscountPercentage) {
				return nil, domain.ErrInvalidInput
			}
		}
		list.CategoryDiscounts = toCategoryDiscounts(in.CategoryDiscounts)
	}
	if in.GlobalDiscountPercentage != nil {
		if !percentInRange(*in.GlobalDiscountPercentage) {
			return nil, domain.ErrInvalidInput
		}
		list.GlobalDiscountPercentage = *in.GlobalDiscountPercentage
	}
	list.UpdatedAt = time.Now()
	if err := uc.repo.Update(list); err != nil {
		return nil, err
	}
	return toResponse(list), nil
}

// SetDefault makes the list the single system-wide default.
func (uc *UseCase) SetDefault(id string) error {
	list, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if list == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetDefault(id)
}

// Delete removes a price list. Customers still referencing it fall back to
// the default list on their next price resolution.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductPrices(in []dto.ProductPriceInput) []entity.ProductPrice {
	out := make([]entity.ProductPrice, 0, len(in))
	for _, pp := range in {
		out = append(out, entity.ProductPrice{ProductID: pp.ProductID, Price: pp.Price})
	}
	return out
}

func toCategoryDiscounts(in []dto.CategoryDiscountInput) []entity.CategoryDiscount {
	out := make([]entity.CategoryDiscount, 0, len(in))
	for _, cd := range in {
		out = append(out, entity.CategoryDiscount{CategoryID: cd.CategoryID, DiscountPercentage: cd.DiscountPercentage})
	}
	return out
}

func toResponse(l *entity.PriceList) *dto.PriceListResponse {
	pps := make([]dto.ProductPriceInput, 0, len(l.ProductPrices))
	for _, pp := range l.ProductPrices {
		pps = append(pps, dto.ProductPriceInput{ProductID: pp.ProductID, Price: pp.Price})
	}
	cds := make([]dto.CategoryDiscountInput, 0, len(l.CategoryDiscounts))
	for _, cd := range l.CategoryDiscounts {
		cds = append(cds, dto.CategoryDiscountInput{CategoryID: cd.CategoryID, DiscountPercentage: cd.DiscountPercentage})
	}
	return &dto.PriceListResponse{
		ID:                       l.ID,
		Name:                     l.Name,
		ProductPrices:            pps,
		CategoryDiscounts:        cds,
		GlobalDiscountPercentage: l.GlobalDiscountPercentage,
		IsDefault:                l.IsDefault,
		CreatedAt:                l.CreatedAt,
		UpdatedAt:                l.UpdatedAt,
	}
}
