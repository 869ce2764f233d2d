package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implements LedgerRepository over PostgreSQL. Entries are
// append-only; the running balance is stored on each row.
type LedgerRepo struct {
	q Querier
}

func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, customer_id, entry_type, amount, description, source, source_id, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CustomerID, entry.EntryType, entry.Amount, entry.Description,
		entry.Source, entry.SourceID, entry.Balance, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// LastBalance reads the balance off the most recent entry, zero for a
// fresh account.
func (r *LedgerRepo) LastBalance(customerID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT balance FROM ledger_entries WHERE customer_id = $1
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		customerID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("last balance: %w", err)
	}
	return balance, nil
}

func (r *LedgerRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, customer_id, entry_type, amount, description, source, COALESCE(source_id, ''), balance, created_at
		 FROM ledger_entries WHERE customer_id = $1
		 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		customerID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var entries []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.EntryType, &e.Amount, &e.Description,
			&e.Source, &e.SourceID, &e.Balance, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
