package calendar

// CalendarItem is one upcoming or recently missed installment due date.
// days_remaining is server-computed: positive for future dates, negative for
// overdue ones, zero for due today.
type CalendarItem struct {
	ScheduleID    int64   `json:"schedule_id"`
	InstallmentID int64   `json:"installment_id"`
	DueDate       string  `json:"due_date"`
	AmountDue     float64 `json:"amount_due"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	OrderID       int64   `json:"order_id"`
	DaysRemaining int     `json:"days_remaining"`
}

// DueCalendarQuery bounds the calendar window. Nil dates defer to the stored
// function's own defaults (today through today plus thirty days).
type DueCalendarQuery struct {
	StartDate *string
	EndDate   *string
	Limit     int
}

const defaultLimit = 100

func (q *DueCalendarQuery) normalize() {
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
}
