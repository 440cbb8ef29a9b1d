package orders

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the order does not exist.
var ErrNotFound = errors.New("orders: not found")

// Repository invokes the order stored functions over the shared pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetOrderDetails invokes ins_get_order_details. The function returns one
// jsonb document with the full aggregate, or SQL NULL for an unknown order.
func (r *Repository) GetOrderDetails(ctx context.Context, orderID int64) (*OrderDetails, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT ins_get_order_details($1)`, orderID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrNotFound
	}

	var details OrderDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// CreatePayment invokes ins_create_payment. The procedure applies the
// waterfall allocation atomically and returns exactly one confirmation row;
// a missing row comes back as (nil, nil) so the service can flag the silent
// no-op distinctly from transport errors.
func (r *Repository) CreatePayment(ctx context.Context, input CreatePaymentInput) (*PaymentConfirmation, error) {
	var conf PaymentConfirmation
	err := r.pool.QueryRow(ctx, `SELECT payment_id, new_remaining_balance, order_status
FROM ins_create_payment($1, $2, $3, $4, $5, $6)`,
		input.AccountID,
		input.OrderID,
		input.AmountPaid,
		input.PaymentMethod,
		input.TenderedAmount,
		input.CreatedAt,
	).Scan(&conf.PaymentID, &conf.NewRemainingBalance, &conf.OrderStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conf, nil
}
