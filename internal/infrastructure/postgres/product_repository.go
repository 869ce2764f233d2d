package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
	"github.com/enescc00/b2bsitesibitmis-sub001/pkg/textutil"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository over PostgreSQL. A folded copy
// of the name is stored alongside for diacritic-insensitive search.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the adapter. Pass a pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT id, sku, name, description, COALESCE(category_id, ''), price, stock, images, is_active, created_at, updated_at
	FROM products`

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, name_folded, description, category_id, price, stock, images, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, textutil.Fold(product.Name), product.Description,
		product.CategoryID, product.Price, product.Stock, product.Images, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by id.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(productSelect+` WHERE id = $1`, id)
}

// GetBySKU fetches a product by its unique SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getOne(productSelect+` WHERE sku = $1`, sku)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Stock,
		&p.Images, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update persists changed product fields. Stock moves through AdjustStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, name_folded = $3, description = $4, category_id = NULLIF($5, ''),
		       price = $6, images = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, textutil.Fold(product.Name), product.Description,
		product.CategoryID, product.Price, product.Images, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustStock adds delta to stock, refusing to go below zero. The guard in
// the WHERE clause makes the check race-safe under concurrent orders.
func (r *ProductRepo) AdjustStock(productID string, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock + $2, updated_at = now()
		 WHERE id = $1 AND stock + $2 >= 0`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// Either the product is gone or stock would go negative.
		existing, err := r.GetByID(productID)
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

// List returns products matching the filter.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := productSelect + ` WHERE 1=1`
	args := []any{}
	if filter.OnlyActive {
		query += ` AND is_active`
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(` AND category_id = $%d`, len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+textutil.Fold(filter.Search)+"%")
		query += fmt.Sprintf(` AND (name_folded LIKE $%d OR sku ILIKE $%d)`, len(args), len(args))
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.Price,
			&p.Stock, &p.Images, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete removes a product.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
