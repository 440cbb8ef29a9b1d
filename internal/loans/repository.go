package loans

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateLayout = "2006-01-02"

// Repository invokes the loan stored functions over the shared pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListActiveLoans invokes ins_get_active_loans. Search filtering, pagination
// and the overdue flag are all computed inside the function; rows come back
// in the function's own order.
func (r *Repository) ListActiveLoans(ctx context.Context, q ActiveLoanQuery) ([]ActiveLoan, error) {
	rows, err := r.pool.Query(ctx, `SELECT installment_id, order_id, customer_name, phone, plan_name, total_financed, remaining_balance, start_date, next_due_date, status
FROM ins_get_active_loans($1, $2, $3)`, q.SearchTerm, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []ActiveLoan
	for rows.Next() {
		var loan ActiveLoan
		var phone pgtype.Text
		var startDate, nextDueDate pgtype.Date
		if err := rows.Scan(&loan.InstallmentID, &loan.OrderID, &loan.CustomerName, &phone, &loan.PlanName, &loan.TotalFinanced, &loan.RemainingBalance, &startDate, &nextDueDate, &loan.Status); err != nil {
			return nil, err
		}
		if phone.Valid {
			loan.Phone = &phone.String
		}
		if startDate.Valid {
			loan.StartDate = startDate.Time.Format(dateLayout)
		}
		if nextDueDate.Valid {
			due := nextDueDate.Time.Format(dateLayout)
			loan.NextDueDate = &due
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return loans, nil
}
