package calendar

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

// Repository invokes the due-calendar stored function over the shared pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListDueCalendar invokes ins_get_due_calendar. NULL bounds let the function
// apply its own window defaults.
func (r *Repository) ListDueCalendar(ctx context.Context, q DueCalendarQuery) ([]CalendarItem, error) {
	start, err := nullableDate(q.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := nullableDate(q.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT schedule_id, installment_id, due_date, amount_due, customer_name, customer_phone, order_id, days_remaining
FROM ins_get_due_calendar($1, $2, $3)`, start, end, q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CalendarItem
	for rows.Next() {
		var item CalendarItem
		var dueDate pgtype.Date
		var phone pgtype.Text
		if err := rows.Scan(&item.ScheduleID, &item.InstallmentID, &dueDate, &item.AmountDue, &item.CustomerName, &phone, &item.OrderID, &item.DaysRemaining); err != nil {
			return nil, err
		}
		if dueDate.Valid {
			item.DueDate = dueDate.Time.Format(dateLayout)
		}
		if phone.Valid {
			item.CustomerPhone = &phone.String
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nullableDate(s *string) (pgtype.Date, error) {
	if s == nil || *s == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}
