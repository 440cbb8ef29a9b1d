package loans

import (
	"context"

	"github.com/meridian-retail/backoffice/internal/platform/envelope"
)

const fallbackListMessage = "An unexpected error occurred while fetching active loans."

// RepositoryPort defines data access methods for loans.
type RepositoryPort interface {
	ListActiveLoans(ctx context.Context, q ActiveLoanQuery) ([]ActiveLoan, error)
}

// Service exposes the loan read operations with the uniform envelope.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// GetActiveLoans returns installment plans with a remaining balance. An empty
// result is success with an empty slice, never an error.
func (s *Service) GetActiveLoans(ctx context.Context, q ActiveLoanQuery) envelope.Result[[]ActiveLoan] {
	return envelope.Call(ctx, fallbackListMessage, func(ctx context.Context) ([]ActiveLoan, error) {
		q.normalize()
		loans, err := s.repo.ListActiveLoans(ctx, q)
		if err != nil {
			return nil, err
		}
		if loans == nil {
			loans = []ActiveLoan{}
		}
		return loans, nil
	})
}
