package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implements InventoryItemRepository over PostgreSQL.
type InventoryItemRepo struct {
	q Querier
}

func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const inventoryItemSelect = `
	SELECT id, name, code, unit_price, currency, purchase_type, term_months, quantity, created_at, updated_at
	FROM inventory_items`

func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, code, unit_price, currency, purchase_type, term_months, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Code, item.UnitPrice, item.Currency,
		item.PurchaseType, item.TermMonths, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return r.getOne(inventoryItemSelect+` WHERE id = $1`, id)
}

func (r *InventoryItemRepo) GetByCode(code string) (*entity.InventoryItem, error) {
	return r.getOne(inventoryItemSelect+` WHERE code = $1`, code)
}

func (r *InventoryItemRepo) getOne(query string, arg any) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.Name, &it.Code, &it.UnitPrice, &it.Currency,
		&it.PurchaseType, &it.TermMonths, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $2, unit_price = $3, currency = $4,
		       purchase_type = $5, term_months = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.UnitPrice, item.Currency,
		item.PurchaseType, item.TermMonths, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// AdjustQuantity adds delta to the on-hand quantity, never below zero.
func (r *InventoryItemRepo) AdjustQuantity(itemID string, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET quantity = quantity + $2, updated_at = now()
		 WHERE id = $1 AND quantity + $2 >= 0`,
		itemID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust inventory quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		existing, err := r.GetByID(itemID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *InventoryItemRepo) List(limit, offset int) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(context.Background(),
		inventoryItemSelect+` ORDER BY code LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var items []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Code, &it.UnitPrice, &it.Currency,
			&it.PurchaseType, &it.TermMonths, &it.Quantity, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *InventoryItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}
