package overdue

import (
	"context"

	"github.com/meridian-retail/backoffice/internal/platform/envelope"
)

const fallbackListMessage = "An unexpected error occurred while fetching overdue payments."

// RepositoryPort defines data access methods for overdue payments.
type RepositoryPort interface {
	ListOverduePayments(ctx context.Context, q OverdueQuery) ([]OverduePayment, error)
}

// Service exposes the overdue-payment read operations with the uniform envelope.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// GetOverduePayments returns late schedule items, most overdue first.
func (s *Service) GetOverduePayments(ctx context.Context, q OverdueQuery) envelope.Result[[]OverduePayment] {
	return envelope.Call(ctx, fallbackListMessage, func(ctx context.Context) ([]OverduePayment, error) {
		q.normalize()
		payments, err := s.repo.ListOverduePayments(ctx, q)
		if err != nil {
			return nil, err
		}
		if payments == nil {
			payments = []OverduePayment{}
		}
		return payments, nil
	})
}
