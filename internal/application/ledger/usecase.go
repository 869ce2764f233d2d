// Package ledger maintains customer account statements: debits from
// orders, credits from payments and approved returns.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// UseCase covers statements and manual payment recording.
type UseCase struct {
	ledgerRepo   repository.LedgerRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase builds the use case.
func NewUseCase(ledgerRepo repository.LedgerRepository, customerRepo repository.CustomerRepository) *UseCase {
	return &UseCase{ledgerRepo: ledgerRepo, customerRepo: customerRepo}
}

// Statement returns a customer's movements with the current balance.
func (uc *UseCase) Statement(customerID string, limit, offset int) (*dto.LedgerResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	balance, err := uc.ledgerRepo.LastBalance(customerID)
	if err != nil {
		return nil, err
	}
	entries, err := uc.ledgerRepo.ListByCustomer(customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.LedgerEntryResponse{
			ID:          e.ID,
			EntryType:   e.EntryType,
			Amount:      e.Amount,
			Description: e.Description,
			Source:      e.Source,
			SourceID:    e.SourceID,
			Balance:     e.Balance,
			CreatedAt:   e.CreatedAt,
		})
	}
	return &dto.LedgerResponse{
		CustomerID: customerID,
		Balance:    balance,
		Entries:    items,
		Page:       dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// RecordPayment credits a received payment to the customer's account.
func (uc *UseCase) RecordPayment(customerID string, in dto.RecordPaymentRequest) (*dto.LedgerEntryResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	balance, err := uc.ledgerRepo.LastBalance(customerID)
	if err != nil {
		return nil, err
	}
	entry := &entity.LedgerEntry{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		EntryType:   entity.LedgerCredit,
		Amount:      in.Amount,
		Description: in.Description,
		Source:      entity.LedgerSourcePayment,
		Balance:     balance.Sub(in.Amount),
		CreatedAt:   time.Now(),
	}
	if err := uc.ledgerRepo.Create(entry); err != nil {
		return nil, err
	}
	return &dto.LedgerEntryResponse{
		ID:          entry.ID,
		EntryType:   entry.EntryType,
		Amount:      entry.Amount,
		Description: entry.Description,
		Source:      entry.Source,
		Balance:     entry.Balance,
		CreatedAt:   entry.CreatedAt,
	}, nil
}
