package customers

import (
	"time"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// UseCase covers customer administration: assigning price lists, payment
// terms and sales reps. Customer creation happens through registration.
type UseCase struct {
	repo          repository.CustomerRepository
	priceListRepo repository.PriceListRepository
}

// NewUseCase builds the use case.
func NewUseCase(repo repository.CustomerRepository, priceListRepo repository.PriceListRepository) *UseCase {
	return &UseCase{repo: repo, priceListRepo: priceListRepo}
}

// GetByID returns one customer.
func (uc *UseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List returns customers: the whole book for admins, the rep's portfolio
// when salesRepID is non-empty.
func (uc *UseCase) List(salesRepID string, limit, offset int) (*dto.CustomerListResponse, error) {
	var list []*entity.Customer
	var err error
	if salesRepID != "" {
		list, err = uc.repo.ListBySalesRep(salesRepID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update changes a customer's commercial data. A price list assignment is
// checked to exist before being stored.
func (uc *UseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.City != nil {
		customer.City = *in.City
	}
	if in.PaymentTerms != nil {
		customer.PaymentTerms = *in.PaymentTerms
	}
	if in.PriceListID != nil {
		if *in.PriceListID != "" {
			list, err := uc.priceListRepo.GetByID(*in.PriceListID)
			if err != nil {
				return nil, err
			}
			if list == nil {
				return nil, domain.ErrNotFound
			}
		}
		customer.PriceListID = *in.PriceListID
	}
	if in.SalesRepID != nil {
		customer.SalesRepID = *in.SalesRepID
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		Kind:         c.Kind,
		Name:         c.Name,
		TaxNumber:    c.TaxNumber,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		City:         c.City,
		PaymentTerms: c.PaymentTerms,
		PriceListID:  c.PriceListID,
		SalesRepID:   c.SalesRepID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
