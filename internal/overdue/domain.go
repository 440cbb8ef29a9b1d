package overdue

// ScheduleStatus enumerates installment schedule item statuses.
type ScheduleStatus string

const (
	SchedulePending   ScheduleStatus = "pending"
	SchedulePaid      ScheduleStatus = "paid"
	ScheduleOverdue   ScheduleStatus = "overdue"
	SchedulePartial   ScheduleStatus = "partial"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// OverduePayment is one late schedule line item. days_overdue and the
// qualifying rule (overdue items plus pending items past due) are computed
// server-side; the list arrives most-overdue first and is not re-sorted here.
type OverduePayment struct {
	ScheduleID      int64          `json:"schedule_id"`
	InstallmentID   int64          `json:"installment_id"`
	DueDate         string         `json:"due_date"`
	AmountDue       float64        `json:"amount_due"`
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   *string        `json:"customer_phone"`
	CustomerAddress *string        `json:"customer_address"`
	DaysOverdue     int            `json:"days_overdue"`
	Status          ScheduleStatus `json:"status"`
}

// OverdueQuery filters the overdue listing. Zero values fall back to the
// operation defaults; an empty search term means no filter.
type OverdueQuery struct {
	SearchTerm string
	Limit      int
}

const defaultLimit = 50

func (q *OverdueQuery) normalize() {
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
}
