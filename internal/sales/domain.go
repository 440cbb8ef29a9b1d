package sales

// SaleType enumerates how an order is financed.
type SaleType string

const (
	SaleFullPayment         SaleType = "full_payment"
	SaleInstallmentWithDown SaleType = "installment_with_down"
	SalePureInstallment     SaleType = "pure_installment"
)

// OrderStatus enumerates order lifecycle states.
type OrderStatus string

const (
	OrderCompleted         OrderStatus = "completed"
	OrderOngoing           OrderStatus = "ongoing"
	OrderDefaulted         OrderStatus = "defaulted"
	OrderRefunded          OrderStatus = "refunded"
	OrderPartiallyRefunded OrderStatus = "partially_refunded"
)

// SalesListItem is one row of the sales listing.
type SalesListItem struct {
	OrderID          int64       `json:"order_id"`
	CustomerName     string      `json:"customer_name"`
	Seller           string      `json:"seller"`
	TotalAmount      float64     `json:"total_amount"`
	PaidAmount       float64     `json:"paid_amount"`
	RemainingBalance float64     `json:"remaining_balance"`
	SaleDate         string      `json:"sale_date"`
	SaleType         SaleType    `json:"sale_type"`
	Status           OrderStatus `json:"status"`
}

// SalesListQuery filters the sales listing. Nil filters are passed to the
// stored function as SQL NULL, which disables them.
type SalesListQuery struct {
	SearchTerm string
	SaleType   *SaleType
	Status     *OrderStatus
	StartDate  *string
	EndDate    *string
	Limit      int
	Offset     int
}

const defaultLimit = 20

func (q *SalesListQuery) normalize() {
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}
