package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	details    *OrderDetails
	detailsErr error

	confirmation *PaymentConfirmation
	paymentErr   error
	lastInput    CreatePaymentInput
}

func (r *stubOrderRepo) GetOrderDetails(ctx context.Context, orderID int64) (*OrderDetails, error) {
	if r.detailsErr != nil {
		return nil, r.detailsErr
	}
	return r.details, nil
}

func (r *stubOrderRepo) CreatePayment(ctx context.Context, input CreatePaymentInput) (*PaymentConfirmation, error) {
	r.lastInput = input
	return r.confirmation, r.paymentErr
}

func TestGetOrderDetailsSuccess(t *testing.T) {
	repo := &stubOrderRepo{details: &OrderDetails{
		OrderInfo:  OrderHeaderInfo{ID: 42, Date: "2026-08-01", Status: OrderOngoing, SaleType: SalePureInstallment},
		Customer:   CustomerSummary{Name: "Maya"},
		Financials: FinancialSummary{TotalAmount: 1000, TotalPaid: 400, RemainingBalance: 600},
	}}
	svc := NewService(repo)

	res := svc.GetOrderDetails(context.Background(), 42)
	require.True(t, res.OK())
	details := res.Value()
	require.Equal(t, int64(42), details.OrderInfo.ID)
	require.Equal(t, 600.0, details.Financials.RemainingBalance)
}

func TestGetOrderDetailsNotFound(t *testing.T) {
	repo := &stubOrderRepo{detailsErr: ErrNotFound}
	svc := NewService(repo)

	res := svc.GetOrderDetails(context.Background(), 999)
	require.False(t, res.OK())
	require.Equal(t, "Order not found.", res.Message())
}

func TestGetOrderDetailsTransportErrorIsDistinct(t *testing.T) {
	repo := &stubOrderRepo{detailsErr: errors.New("connection reset")}
	svc := NewService(repo)

	res := svc.GetOrderDetails(context.Background(), 42)
	require.False(t, res.OK())
	require.Equal(t, "connection reset", res.Message())
	require.NotEqual(t, NotFoundMessage, res.Message())
}

func TestCreatePaymentSuccess(t *testing.T) {
	repo := &stubOrderRepo{confirmation: &PaymentConfirmation{
		PaymentID:           7,
		NewRemainingBalance: 0,
		OrderStatus:         OrderCompleted,
	}}
	svc := NewService(repo)

	res := svc.CreatePayment(context.Background(), CreatePaymentInput{
		AccountID:      1,
		OrderID:        42,
		AmountPaid:     500,
		PaymentMethod:  "cash",
		TenderedAmount: 600,
	})
	require.True(t, res.OK())
	conf := res.Value()
	require.Equal(t, int64(7), conf.PaymentID)
	require.Equal(t, 0.0, conf.NewRemainingBalance)
	require.Equal(t, OrderCompleted, conf.OrderStatus)
}

func TestCreatePaymentDefaultsCreatedAt(t *testing.T) {
	repo := &stubOrderRepo{confirmation: &PaymentConfirmation{PaymentID: 1}}
	svc := NewService(repo)
	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	res := svc.CreatePayment(context.Background(), CreatePaymentInput{
		AccountID:     1,
		OrderID:       42,
		AmountPaid:    100,
		PaymentMethod: "bank_transfer",
	})
	require.True(t, res.OK())
	require.Equal(t, fixed, repo.lastInput.CreatedAt)
	require.Equal(t, 0.0, repo.lastInput.TenderedAmount)
}

func TestCreatePaymentKeepsExplicitCreatedAt(t *testing.T) {
	repo := &stubOrderRepo{confirmation: &PaymentConfirmation{PaymentID: 1}}
	svc := NewService(repo)

	at := time.Date(2026, 7, 1, 9, 30, 0, 0, time.UTC)
	res := svc.CreatePayment(context.Background(), CreatePaymentInput{
		AccountID:     1,
		OrderID:       42,
		AmountPaid:    100,
		PaymentMethod: "cash",
		CreatedAt:     at,
	})
	require.True(t, res.OK())
	require.Equal(t, at, repo.lastInput.CreatedAt)
}

func TestCreatePaymentNoConfirmationRow(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewService(repo)

	res := svc.CreatePayment(context.Background(), CreatePaymentInput{
		AccountID:     1,
		OrderID:       42,
		AmountPaid:    500,
		PaymentMethod: "cash",
	})
	require.False(t, res.OK())
	require.Equal(t, "Payment failed. No confirmation received.", res.Message())
}

func TestCreatePaymentTransportError(t *testing.T) {
	repo := &stubOrderRepo{paymentErr: errors.New("deadlock detected")}
	svc := NewService(repo)

	res := svc.CreatePayment(context.Background(), CreatePaymentInput{
		AccountID:     1,
		OrderID:       42,
		AmountPaid:    500,
		PaymentMethod: "cash",
	})
	require.False(t, res.OK())
	require.Equal(t, "deadlock detected", res.Message())
}
