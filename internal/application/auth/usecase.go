package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
	"github.com/enescc00/b2bsitesibitmis-sub001/pkg/jwt"
)

// JWTConfig holds token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase covers registration and login. Registration always creates a
// customer-role user together with its Customer record; staff accounts are
// provisioned through the users module.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(userRepo repository.UserRepository, customerRepo repository.CustomerRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, customerRepo: customerRepo, jwtCfg: jwtCfg}
}

// Register creates the login user and its customer profile. New customers
// start on cash terms unless stated otherwise; credit terms are granted by
// an administrator afterwards.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if in.Kind == entity.CustomerCorporate && in.TaxNumber == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleCustomer,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	terms := in.PaymentTerms
	if terms == "" {
		terms = entity.PaymentCash
	}
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Kind:         in.Kind,
		Name:         in.Name,
		TaxNumber:    in.TaxNumber,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		PaymentTerms: terms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, customer.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:      token,
		UserID:     user.ID,
		CustomerID: customer.ID,
		Role:       user.Role,
		Name:       user.Name,
	}, nil
}

// Login verifies credentials and issues a JWT carrying role and, for
// customer accounts, the linked customer id.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	var customerID string
	if user.Role == entity.RoleCustomer {
		customer, err := uc.customerRepo.GetByUserID(user.ID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			customerID = customer.ID
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, customerID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:      token,
		UserID:     user.ID,
		CustomerID: customerID,
		Role:       user.Role,
		Name:       user.Name,
	}, nil
}
