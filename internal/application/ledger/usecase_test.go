package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
)

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) GetByUserID(string) (*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Update(*entity.Customer) error                { return nil }
func (f *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error)    { return nil, nil }
func (f *fakeCustomerRepo) ListBySalesRep(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func (f *fakeLedgerRepo) Create(e *entity.LedgerEntry) error {
	f.entries = append(f.entries, e)
	return nil
}
func (f *fakeLedgerRepo) LastBalance(customerID string) (decimal.Decimal, error) {
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].CustomerID == customerID {
			return f.entries[i].Balance, nil
		}
	}
	return decimal.Zero, nil
}
func (f *fakeLedgerRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	return f.entries, nil
}

func newUseCase() (*UseCase, *fakeLedgerRepo) {
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"cust-1": {ID: "cust-1", Name: "Acme"},
	}}
	ledger := &fakeLedgerRepo{}
	return NewUseCase(ledger, customers), ledger
}

func TestRecordPayment_CreditsRunningBalance(t *testing.T) {
	uc, ledger := newUseCase()
	ledger.entries = append(ledger.entries, &entity.LedgerEntry{
		CustomerID: "cust-1",
		EntryType:  entity.LedgerDebit,
		Amount:     decimal.NewFromInt(180),
		Balance:    decimal.NewFromInt(180),
	})

	out, err := uc.RecordPayment("cust-1", dto.RecordPaymentRequest{
		Amount:      decimal.NewFromInt(100),
		Description: "bank transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.LedgerCredit, out.EntryType)
	assert.Equal(t, "80", out.Balance.String())
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RecordPayment("cust-1", dto.RecordPaymentRequest{Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordPayment_UnknownCustomer(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RecordPayment("nobody", dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatement_ReturnsBalanceAndEntries(t *testing.T) {
	uc, ledger := newUseCase()
	ledger.entries = append(ledger.entries,
		&entity.LedgerEntry{CustomerID: "cust-1", EntryType: entity.LedgerDebit,
			Amount: decimal.NewFromInt(200), Balance: decimal.NewFromInt(200)},
		&entity.LedgerEntry{CustomerID: "cust-1", EntryType: entity.LedgerCredit,
			Amount: decimal.NewFromInt(50), Balance: decimal.NewFromInt(150)},
	)

	out, err := uc.Statement("cust-1", 20, 0)
	require.NoError(t, err)

	assert.Equal(t, "150", out.Balance.String())
	assert.Len(t, out.Entries, 2)
}

func TestStatement_UnknownCustomer(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Statement("nobody", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
