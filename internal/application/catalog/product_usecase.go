package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	apppricing "github.com/enescc00/b2bsitesibitmis-sub001/internal/application/pricing"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// ProductUseCase covers catalog CRUD and customer-facing priced listings.
type ProductUseCase struct {
	repo         repository.ProductRepository
	customerRepo repository.CustomerRepository
	quoter       *apppricing.Quoter
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository, customerRepo repository.CustomerRepository, quoter *apppricing.Quoter) *ProductUseCase {
	return &ProductUseCase{repo: repo, customerRepo: customerRepo, quoter: quoter}
}

// Create adds a catalog product.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Stock:       in.Stock,
		Images:      in.Images,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns one product. When customerID is non-empty the response
// carries the price that customer pays right now.
func (uc *ProductUseCase) GetByID(id, customerID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := toProductResponse(product)
	if customerID != "" {
		if err := uc.attachResolvedPrices(customerID, []*dto.ProductResponse{out}, []*entity.Product{product}); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// List returns products. For customer callers every item carries its
// resolved price, computed against one configuration snapshot so the whole
// page prices consistently.
func (uc *ProductUseCase) List(filter repository.ProductFilter, customerID string) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	refs := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
		refs = append(refs, &items[len(items)-1])
	}
	if customerID != "" {
		if err := uc.attachResolvedPrices(customerID, refs, products); err != nil {
			return nil, err
		}
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Update changes product fields. Stock moves through AdjustStock only.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Images != nil {
		product.Images = in.Images
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a product.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) attachResolvedPrices(customerID string, out []*dto.ProductResponse, products []*entity.Product) error {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return err
	}
	snapshot, err := uc.quoter.SnapshotFor(customer)
	if err != nil {
		return err
	}
	for i, p := range products {
		price, err := snapshot.Quote(p)
		if err != nil {
			// A single bad record must not break the whole listing.
			continue
		}
		priceCopy := price
		out[i].ResolvedPrice = &priceCopy
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Stock:       p.Stock,
		Images:      p.Images,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
