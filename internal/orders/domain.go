package orders

import "time"

// OrderStatus enumerates order lifecycle states. Transitions happen inside
// the database procedures; the client only displays the current value.
type OrderStatus string

const (
	OrderCompleted         OrderStatus = "completed"
	OrderOngoing           OrderStatus = "ongoing"
	OrderDefaulted         OrderStatus = "defaulted"
	OrderRefunded          OrderStatus = "refunded"
	OrderPartiallyRefunded OrderStatus = "partially_refunded"
)

// SaleType enumerates how an order is financed.
type SaleType string

const (
	SaleFullPayment         SaleType = "full_payment"
	SaleInstallmentWithDown SaleType = "installment_with_down"
	SalePureInstallment     SaleType = "pure_installment"
)

// ScheduleStatus enumerates installment schedule item statuses.
type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	SchedulePaid      ScheduleStatus = "paid"
	ScheduleOverdue   ScheduleStatus = "overdue"
	SchedulePartial   ScheduleStatus = "partial"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// OrderHeaderInfo carries the order header fields.
type OrderHeaderInfo struct {
	ID       int64       `json:"id"`
	Date     string      `json:"date"`
	Status   OrderStatus `json:"status"`
	SaleType SaleType    `json:"sale_type"`
	Notes    *string     `json:"notes"`
}

// CustomerSummary carries the customer block of an order aggregate.
type CustomerSummary struct {
	ID          *int64   `json:"id"`
	Name        string   `json:"name"`
	Phone       *string  `json:"phone"`
	Address     *string  `json:"address"`
	CreditLimit *float64 `json:"credit_limit"`
}

// FinancialSummary carries the money totals. remaining_balance equals
// total_amount minus total_paid; the database maintains that invariant.
type FinancialSummary struct {
	TotalAmount      float64 `json:"total_amount"`
	TotalPaid        float64 `json:"total_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// OrderItemDetail is one sold line item.
type OrderItemDetail struct {
	ProductName string  `json:"product_name"`
	SKU         *string `json:"sku"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// PaymentHistoryItem is one recorded payment against the order.
type PaymentHistoryItem struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Method   string  `json:"method"`
	Amount   float64 `json:"amount"`
	Tendered float64 `json:"tendered"`
	Change   float64 `json:"change"`
}

// InstallmentScheduleItem is one due installment row of the payment plan.
type InstallmentScheduleItem struct {
	DueDate    string         `json:"due_date"`
	AmountDue  float64        `json:"amount_due"`
	AmountPaid float64        `json:"amount_paid"`
	Status     ScheduleStatus `json:"status"`
}

// InstallmentDetails is present only for installment sale types.
type InstallmentDetails struct {
	PlanName      *string                   `json:"plan_name"`
	TotalFinanced float64                   `json:"total_financed"`
	StartDate     string                    `json:"start_date"`
	Schedule      []InstallmentScheduleItem `json:"schedule"`
}

// OrderDetails is the full read aggregate for one order, shaped by
// ins_get_order_details.
type OrderDetails struct {
	OrderInfo          OrderHeaderInfo      `json:"order_info"`
	Customer           CustomerSummary      `json:"customer"`
	Financials         FinancialSummary     `json:"financials"`
	Items              []OrderItemDetail    `json:"items"`
	Payments           []PaymentHistoryItem `json:"payments"`
	InstallmentDetails *InstallmentDetails  `json:"installment_details"`
}

// CreatePaymentInput carries the payment-creation command. The service is a
// pure pass-through: amount checks against the remaining balance belong to
// the caller, the waterfall allocation to the database procedure.
type CreatePaymentInput struct {
	AccountID      int64
	OrderID        int64
	AmountPaid     float64
	PaymentMethod  string
	TenderedAmount float64
	CreatedAt      time.Time
}

// PaymentConfirmation is the authoritative post-state returned by
// ins_create_payment. The client never computes the new balance itself.
type PaymentConfirmation struct {
	PaymentID           int64       `json:"payment_id"`
	NewRemainingBalance float64     `json:"new_remaining_balance"`
	OrderStatus         OrderStatus `json:"order_status"`
}
