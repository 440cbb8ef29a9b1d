package orders

import (
	"context"
	"errors"
	"time"

	"github.com/meridian-retail/backoffice/internal/platform/envelope"
)

// Fixed envelope messages. NotFoundMessage is the one failure presentation
// code is allowed to branch on; everything else is display-only text.
const (
	NotFoundMessage       = "Order not found."
	NoConfirmationMessage = "Payment failed. No confirmation received."

	fallbackDetailsMessage = "An unexpected error occurred while fetching order details."
	fallbackPaymentMessage = "An unexpected error occurred while processing the payment."
)

// RepositoryPort defines data access methods for orders.
type RepositoryPort interface {
	GetOrderDetails(ctx context.Context, orderID int64) (*OrderDetails, error)
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*PaymentConfirmation, error)
}

// Service exposes the order operations with the uniform envelope.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

// GetOrderDetails returns the full aggregate for one order. An unknown order
// is a normal, displayable outcome, surfaced through the same envelope shape
// as transport failures but with the fixed not-found message.
func (s *Service) GetOrderDetails(ctx context.Context, orderID int64) envelope.Result[OrderDetails] {
	return envelope.Call(ctx, fallbackDetailsMessage, func(ctx context.Context) (OrderDetails, error) {
		details, err := s.repo.GetOrderDetails(ctx, orderID)
		if errors.Is(err, ErrNotFound) {
			return OrderDetails{}, envelope.Msg(NotFoundMessage)
		}
		if err != nil {
			return OrderDetails{}, err
		}
		return *details, nil
	})
}

// CreatePayment records a payment against an order. The procedure pays off
// the earliest-due schedule items first and recomputes the order status in
// one transaction; zero confirmation rows is treated as a failure even when
// no transport error was reported.
func (s *Service) CreatePayment(ctx context.Context, input CreatePaymentInput) envelope.Result[PaymentConfirmation] {
	return envelope.Call(ctx, fallbackPaymentMessage, func(ctx context.Context) (PaymentConfirmation, error) {
		if input.CreatedAt.IsZero() {
			input.CreatedAt = s.now()
		}
		conf, err := s.repo.CreatePayment(ctx, input)
		if err != nil {
			return PaymentConfirmation{}, err
		}
		if conf == nil {
			return PaymentConfirmation{}, envelope.Msg(NoConfirmationMessage)
		}
		return *conf, nil
	})
}
