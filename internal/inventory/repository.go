package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository invokes the inventory stored functions over the shared pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetDashboardSummary invokes inv_get_dashboard_summary. A missing row comes
// back as (nil, nil) so the service can flag the contract violation.
func (r *Repository) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	err := r.pool.QueryRow(ctx, `SELECT total_inventory_value, total_product_count, low_stock_item_count
FROM inv_get_dashboard_summary()`).Scan(&summary.TotalInventoryValue, &summary.TotalProductCount, &summary.LowStockItemCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
