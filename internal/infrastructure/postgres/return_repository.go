package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implements ReturnRepository over PostgreSQL.
type ReturnRepo struct {
	q Querier
}

func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

const returnSelect = `
	SELECT id, order_id, customer_id, reason, status, refund_amount, created_at, updated_at
	FROM returns`

func (r *ReturnRepo) Create(ret *entity.Return) error {
	query := `
		INSERT INTO returns (id, order_id, customer_id, reason, status, refund_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.OrderID, ret.CustomerID, ret.Reason, ret.Status,
		ret.RefundAmount, ret.CreatedAt, ret.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

func (r *ReturnRepo) GetByID(id string) (*entity.Return, error) {
	var ret entity.Return
	err := r.q.QueryRow(context.Background(), returnSelect+` WHERE id = $1`, id).Scan(
		&ret.ID, &ret.OrderID, &ret.CustomerID, &ret.Reason, &ret.Status,
		&ret.RefundAmount, &ret.CreatedAt, &ret.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	return &ret, nil
}

func (r *ReturnRepo) Update(ret *entity.Return) error {
	query := `
		UPDATE returns SET status = $2, refund_amount = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.Status, ret.RefundAmount, ret.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update return: %w", err)
	}
	return nil
}

func (r *ReturnRepo) List(limit, offset int) ([]*entity.Return, error) {
	return r.list(returnSelect+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *ReturnRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Return, error) {
	return r.list(returnSelect+` WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		customerID, limit, offset)
}

func (r *ReturnRepo) list(query string, args ...any) ([]*entity.Return, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()
	var returns []*entity.Return
	for rows.Next() {
		var ret entity.Return
		if err := rows.Scan(&ret.ID, &ret.OrderID, &ret.CustomerID, &ret.Reason, &ret.Status,
			&ret.RefundAmount, &ret.CreatedAt, &ret.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		returns = append(returns, &ret)
	}
	return returns, rows.Err()
}
