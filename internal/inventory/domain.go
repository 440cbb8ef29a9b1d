package inventory

// DashboardSummary carries the high-level inventory statistics. The stored
// function always returns exactly one row; a missing row is a contract
// violation, not an empty state.
type DashboardSummary struct {
	TotalInventoryValue float64 `json:"total_inventory_value"`
	TotalProductCount   int64   `json:"total_product_count"`
	LowStockItemCount   int64   `json:"low_stock_item_count"`
}
