package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

var _ repository.PriceListRepository = (*PriceListRepo)(nil)

// PriceListRepo implements PriceListRepository over PostgreSQL. The rule
// arrays live in JSONB columns; a partial unique index keeps at most one
// row with is_default = true.
type PriceListRepo struct {
	q Querier
}

func NewPriceListRepository(q Querier) *PriceListRepo {
	return &PriceListRepo{q: q}
}

const priceListSelect = `
	SELECT id, name, product_prices, category_discounts, global_discount_percentage, is_default, created_at, updated_at
	FROM price_lists`

func (r *PriceListRepo) Create(list *entity.PriceList) error {
	prices, discounts, err := marshalRules(list)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO price_lists (id, name, product_prices, category_discounts, global_discount_percentage, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		list.ID, list.Name, prices, discounts, list.GlobalDiscountPercentage,
		list.IsDefault, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert price list: %w", err)
	}
	return nil
}

func (r *PriceListRepo) GetByID(id string) (*entity.PriceList, error) {
	return r.getOne(priceListSelect+` WHERE id = $1`, id)
}

// GetDefault returns the system default list, or nil when none is set.
func (r *PriceListRepo) GetDefault() (*entity.PriceList, error) {
	return r.getOne(priceListSelect + ` WHERE is_default`)
}

func (r *PriceListRepo) getOne(query string, args ...any) (*entity.PriceList, error) {
	var (
		l         entity.PriceList
		prices    []byte
		discounts []byte
	)
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.Name, &prices, &discounts, &l.GlobalDiscountPercentage,
		&l.IsDefault, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price list: %w", err)
	}
	if err := unmarshalRules(&l, prices, discounts); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PriceListRepo) Update(list *entity.PriceList) error {
	prices, discounts, err := marshalRules(list)
	if err != nil {
		return err
	}
	query := `
		UPDATE price_lists SET name = $2, product_prices = $3, category_discounts = $4,
		       global_discount_percentage = $5, updated_at = $6
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		list.ID, list.Name, prices, discounts, list.GlobalDiscountPercentage, list.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update price list: %w", err)
	}
	return nil
}

// SetDefault flips the default flag in a single statement so the partial
// unique index never sees two defaults at once.
func (r *PriceListRepo) SetDefault(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE price_lists SET is_default = (id = $1), updated_at = now()
		 WHERE is_default OR id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("set default price list: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PriceListRepo) List(limit, offset int) ([]*entity.PriceList, error) {
	rows, err := r.q.Query(context.Background(),
		priceListSelect+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list price lists: %w", err)
	}
	defer rows.Close()
	var lists []*entity.PriceList
	for rows.Next() {
		var (
			l         entity.PriceList
			prices    []byte
			discounts []byte
		)
		if err := rows.Scan(&l.ID, &l.Name, &prices, &discounts, &l.GlobalDiscountPercentage,
			&l.IsDefault, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price list: %w", err)
		}
		if err := unmarshalRules(&l, prices, discounts); err != nil {
			return nil, err
		}
		lists = append(lists, &l)
	}
	return lists, rows.Err()
}

func (r *PriceListRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM price_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete price list: %w", err)
	}
	return nil
}

func marshalRules(list *entity.PriceList) ([]byte, []byte, error) {
	prices, err := json.Marshal(list.ProductPrices)
	if err != nil {
		return nil, nil, fmt.Errorf("encode product prices: %w", err)
	}
	discounts, err := json.Marshal(list.CategoryDiscounts)
	if err != nil {
		return nil, nil, fmt.Errorf("encode category discounts: %w", err)
	}
	return prices, discounts, nil
}

func unmarshalRules(list *entity.PriceList, prices, discounts []byte) error {
	if len(prices) > 0 {
		if err := json.Unmarshal(prices, &list.ProductPrices); err != nil {
			return fmt.Errorf("decode product prices: %w", err)
		}
	}
	if len(discounts) > 0 {
		if err := json.Unmarshal(discounts, &list.CategoryDiscounts); err != nil {
			return fmt.Errorf("decode category discounts: %w", err)
		}
	}
	return nil
}
