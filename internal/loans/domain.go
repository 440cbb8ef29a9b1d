package loans

// LoanStatus enumerates active-loan statuses. The status is computed
// server-side from the next pending due date; the client treats it as
// authoritative and never re-derives it.
type LoanStatus string

const (
	LoanStatusActive  LoanStatus = "active"
	LoanStatusOverdue LoanStatus = "overdue"
)

// ActiveLoan is one installment plan with a positive remaining balance.
type ActiveLoan struct {
	InstallmentID    int64      `json:"installment_id"`
	OrderID          int64      `json:"order_id"`
	CustomerName     string     `json:"customer_name"`
	Phone            *string    `json:"phone"`
	PlanName         string     `json:"plan_name"`
	TotalFinanced    float64    `json:"total_financed"`
	RemainingBalance float64    `json:"remaining_balance"`
	StartDate        string     `json:"start_date"`
	NextDueDate      *string    `json:"next_due_date"`
	Status           LoanStatus `json:"status"`
}

// ActiveLoanQuery filters the active-loan listing. Zero values fall back to
// the operation defaults; an empty search term means no filter.
type ActiveLoanQuery struct {
	SearchTerm string
	Limit      int
	Offset     int
}

const (
	defaultLimit = 20
)

func (q *ActiveLoanQuery) normalize() {
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}
