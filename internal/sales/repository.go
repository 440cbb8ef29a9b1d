package sales

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository invokes the sales-list stored function over the shared pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListSales invokes ins_get_sales_list.
func (r *Repository) ListSales(ctx context.Context, q SalesListQuery) ([]SalesListItem, error) {
	start, err := nullableTimestamp(q.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := nullableTimestamp(q.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT order_id, customer_name, seller, total_amount, paid_amount, remaining_balance, sale_date, sale_type, status
FROM ins_get_sales_list($1, $2, $3, $4, $5, $6, $7)`,
		q.SearchTerm,
		nullableString((*string)(q.SaleType)),
		nullableString((*string)(q.Status)),
		start,
		end,
		q.Limit,
		q.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SalesListItem
	for rows.Next() {
		var item SalesListItem
		var saleDate pgtype.Timestamptz
		if err := rows.Scan(&item.OrderID, &item.CustomerName, &item.Seller, &item.TotalAmount, &item.PaidAmount, &item.RemainingBalance, &saleDate, &item.SaleType, &item.Status); err != nil {
			return nil, err
		}
		if saleDate.Valid {
			item.SaleDate = saleDate.Time.UTC().Format(time.RFC3339)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nullableString(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func nullableTimestamp(s *string) (pgtype.Timestamptz, error) {
	if s == nil || *s == "" {
		return pgtype.Timestamptz{}, nil
	}
	t, err := parseDateInput(*s)
	if err != nil {
		return pgtype.Timestamptz{}, err
	}
	return pgtype.Timestamptz{Time: t, Valid: true}, nil
}

// parseDateInput accepts a full RFC 3339 timestamp or a plain date.
func parseDateInput(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	return t, err
}
