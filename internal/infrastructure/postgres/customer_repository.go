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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository over PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, user_id, kind, name, tax_number, email, phone, address, city, payment_terms, price_list_id, sales_rep_id, created_at, updated_at`

// Create persists a new customer.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), NULLIF($12, ''), $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.UserID, customer.Kind, customer.Name, customer.TaxNumber,
		customer.Email, customer.Phone, customer.Address, customer.City,
		customer.PaymentTerms, customer.PriceListID, customer.SalesRepID,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer by id.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByUserID fetches the customer linked to a login user.
func (r *CustomerRepo) GetByUserID(userID string) (*entity.Customer, error) {
	return r.getOne(`WHERE user_id = $1`, userID)
}

func (r *CustomerRepo) getOne(where string, arg any) (*entity.Customer, error) {
	query := `
		SELECT id, user_id, kind, name, tax_number, email, phone, address, city,
		       payment_terms, COALESCE(price_list_id, ''), COALESCE(sales_rep_id, ''), created_at, updated_at
		FROM customers ` + where
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.UserID, &c.Kind, &c.Name, &c.TaxNumber, &c.Email, &c.Phone,
		&c.Address, &c.City, &c.PaymentTerms, &c.PriceListID, &c.SalesRepID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update persists changed customer fields.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, phone = $3, address = $4, city = $5,
		       payment_terms = $6, price_list_id = NULLIF($7, ''), sales_rep_id = NULLIF($8, ''), updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Address, customer.City,
		customer.PaymentTerms, customer.PriceListID, customer.SalesRepID, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List returns customers ordered by creation time.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	return r.list(`ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListBySalesRep returns the portfolio of one sales representative.
func (r *CustomerRepo) ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Customer, error) {
	return r.list(`WHERE sales_rep_id = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset, salesRepID)
}

func (r *CustomerRepo) list(tail string, args ...any) ([]*entity.Customer, error) {
	query := `
		SELECT id, user_id, kind, name, tax_number, email, phone, address, city,
		       payment_terms, COALESCE(price_list_id, ''), COALESCE(sales_rep_id, ''), created_at, updated_at
		FROM customers ` + tail
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Kind, &c.Name, &c.TaxNumber, &c.Email, &c.Phone,
			&c.Address, &c.City, &c.PaymentTerms, &c.PriceListID, &c.SalesRepID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
