package orders

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreatePaymentRequest is the JSON body of the payment-creation endpoint.
// The amount ceiling (amount <= remaining balance) is enforced by the
// database procedure; the handler only rejects requests that are malformed
// on their face.
type CreatePaymentRequest struct {
	AccountID      int64   `json:"account_id" validate:"required,gt=0"`
	AmountPaid     float64 `json:"amount_paid" validate:"required,gt=0"`
	PaymentMethod  string  `json:"payment_method" validate:"required"`
	TenderedAmount float64 `json:"tendered_amount" validate:"gte=0"`
	CreatedAt      string  `json:"created_at" validate:"omitempty"`
}

// Validate checks the request shape.
func (req CreatePaymentRequest) Validate() error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if req.CreatedAt != "" {
		if _, err := time.Parse(time.RFC3339, req.CreatedAt); err != nil {
			return err
		}
	}
	return nil
}

// ToInput converts the request into the service command. An omitted
// created_at defaults to the current timestamp inside the service.
func (req CreatePaymentRequest) ToInput(orderID int64) CreatePaymentInput {
	input := CreatePaymentInput{
		AccountID:      req.AccountID,
		OrderID:        orderID,
		AmountPaid:     req.AmountPaid,
		PaymentMethod:  req.PaymentMethod,
		TenderedAmount: req.TenderedAmount,
	}
	if req.CreatedAt != "" {
		if at, err := time.Parse(time.RFC3339, req.CreatedAt); err == nil {
			input.CreatedAt = at
		}
	}
	return input
}
