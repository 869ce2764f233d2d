package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

type fakeProductRepo struct {
	bySKU     map[string]*entity.Product
	lookupErr error
}

func (f *fakeProductRepo) Create(p *entity.Product) error          { f.bySKU[p.SKU] = p; return nil }
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.bySKU[sku], nil
}
func (f *fakeProductRepo) Update(*entity.Product) error    { return nil }
func (f *fakeProductRepo) AdjustStock(string, int64) error { return nil }
func (f *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(string) error { return nil }

func createReq() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:   "BTN-001",
		Name:  "Düğme",
		Price: decimal.NewFromInt(100),
		Stock: 10,
	}
}

func TestCreate_StoresProduct(t *testing.T) {
	repo := &fakeProductRepo{bySKU: map[string]*entity.Product{}}
	uc := NewProductUseCase(repo, nil, nil)

	out, err := uc.Create(createReq())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.True(t, out.IsActive)
	require.NotNil(t, repo.bySKU["BTN-001"])
}

func TestCreate_DuplicateSKU(t *testing.T) {
	repo := &fakeProductRepo{bySKU: map[string]*entity.Product{}}
	uc := NewProductUseCase(repo, nil, nil)
	_, err := uc.Create(createReq())
	require.NoError(t, err)

	_, err = uc.Create(createReq())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_LookupFailureIsNotADuplicate(t *testing.T) {
	boom := errors.New("connection refused")
	uc := NewProductUseCase(&fakeProductRepo{lookupErr: boom}, nil, nil)

	_, err := uc.Create(createReq())
	assert.ErrorIs(t, err, boom)
}

func TestCreate_RejectsNegativePrice(t *testing.T) {
	uc := NewProductUseCase(&fakeProductRepo{bySKU: map[string]*entity.Product{}}, nil, nil)
	in := createReq()
	in.Price = decimal.NewFromInt(-1)

	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
