package overdue

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

// Repository invokes the overdue-payment stored function over the shared pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListOverduePayments invokes ins_get_overdue_payments.
func (r *Repository) ListOverduePayments(ctx context.Context, q OverdueQuery) ([]OverduePayment, error) {
	rows, err := r.pool.Query(ctx, `SELECT schedule_id, installment_id, due_date, amount_due, customer_name, customer_phone, customer_address, days_overdue, status
FROM ins_get_overdue_payments($1, $2)`, q.SearchTerm, q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []OverduePayment
	for rows.Next() {
		var item OverduePayment
		var dueDate pgtype.Date
		var phone, address pgtype.Text
		if err := rows.Scan(&item.ScheduleID, &item.InstallmentID, &dueDate, &item.AmountDue, &item.CustomerName, &phone, &address, &item.DaysOverdue, &item.Status); err != nil {
			return nil, err
		}
		if dueDate.Valid {
			item.DueDate = dueDate.Time.Format(dateLayout)
		}
		if phone.Valid {
			item.CustomerPhone = &phone.String
		}
		if address.Valid {
			item.CustomerAddress = &address.String
		}
		payments = append(payments, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}
