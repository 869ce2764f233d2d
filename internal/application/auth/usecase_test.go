package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	pkgjwt "github.com/enescc00/b2bsitesibitmis-sub001/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail   map[string]*entity.User
	lookupErr error
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}
func (f *fakeUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) Update(*entity.User) error             { return nil }
func (f *fakeUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }

type fakeCustomerRepo struct {
	byUserID map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.byUserID[c.UserID] = c
	return nil
}
func (f *fakeCustomerRepo) GetByID(string) (*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) GetByUserID(userID string) (*entity.Customer, error) {
	return f.byUserID[userID], nil
}
func (f *fakeCustomerRepo) Update(*entity.Customer) error             { return nil }
func (f *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) ListBySalesRep(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func newAuthUseCase() *AuthUseCase {
	return NewAuthUseCase(
		&fakeUserRepo{byEmail: map[string]*entity.User{}},
		&fakeCustomerRepo{byUserID: map[string]*entity.Customer{}},
		JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"},
	)
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "buyer@example.com",
		Password: "correct-horse",
		Name:     "Buyer Co",
		Kind:     entity.CustomerIndividual,
	}
}

func TestRegister_CreatesCustomerAccount(t *testing.T) {
	uc := newAuthUseCase()

	out, err := uc.Register(registerReq())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCustomer, out.Role)
	assert.NotEmpty(t, out.CustomerID)
	assert.NotEmpty(t, out.Token)

	// The token carries the linked customer id.
	userID, customerID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.UserID, userID)
	assert.Equal(t, out.CustomerID, customerID)
	assert.Equal(t, entity.RoleCustomer, role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newAuthUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.Register(registerReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_LookupFailureIsNotADuplicate(t *testing.T) {
	boom := errors.New("connection refused")
	uc := NewAuthUseCase(
		&fakeUserRepo{byEmail: map[string]*entity.User{}, lookupErr: boom},
		&fakeCustomerRepo{byUserID: map[string]*entity.Customer{}},
		JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"},
	)

	_, err := uc.Register(registerReq())
	assert.ErrorIs(t, err, boom)
}

func TestRegister_CorporateRequiresTaxNumber(t *testing.T) {
	uc := newAuthUseCase()
	in := registerReq()
	in.Kind = entity.CustomerCorporate
	in.TaxNumber = ""

	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_DefaultsToCashTerms(t *testing.T) {
	customers := &fakeCustomerRepo{byUserID: map[string]*entity.Customer{}}
	uc := NewAuthUseCase(
		&fakeUserRepo{byEmail: map[string]*entity.User{}},
		customers,
		JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"},
	)

	out, err := uc.Register(registerReq())
	require.NoError(t, err)

	customer := customers.byUserID[out.UserID]
	require.NotNil(t, customer)
	assert.Equal(t, entity.PaymentCash, customer.PaymentTerms)
}

func TestLogin_RoundTrip(t *testing.T) {
	uc := newAuthUseCase()
	reg, err := uc.Register(registerReq())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "buyer@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, out.UserID)
	assert.Equal(t, reg.CustomerID, out.CustomerID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newAuthUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "buyer@example.com", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
