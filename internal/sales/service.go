package sales

import (
	"context"

	"github.com/meridian-retail/backoffice/internal/platform/envelope"
)

const fallbackListMessage = "An unexpected error occurred while fetching the sales list."

// RepositoryPort defines data access methods for the sales listing.
type RepositoryPort interface {
	ListSales(ctx context.Context, q SalesListQuery) ([]SalesListItem, error)
}

// Service exposes the sales-list read operation with the uniform envelope.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// GetSalesList returns orders matching the optional filters.
func (s *Service) GetSalesList(ctx context.Context, q SalesListQuery) envelope.Result[[]SalesListItem] {
	return envelope.Call(ctx, fallbackListMessage, func(ctx context.Context) ([]SalesListItem, error) {
		q.normalize()
		items, err := s.repo.ListSales(ctx, q)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []SalesListItem{}
		}
		return items, nil
	})
}
