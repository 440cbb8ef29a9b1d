package inventory

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/meridian-retail/backoffice/internal/platform/envelope"
)

const (
	// NoDataMessage is returned when the stored function violates its
	// one-row contract.
	NoDataMessage = "No dashboard data available."

	fallbackSummaryMessage = "An unexpected error occurred while fetching inventory dashboard stats."
)

// RepositoryPort defines data access methods for the inventory dashboard.
type RepositoryPort interface {
	GetDashboardSummary(ctx context.Context) (*DashboardSummary, error)
}

// Service exposes the dashboard read operation with the uniform envelope.
// Concurrent callers share one in-flight load per cache key.
type Service struct {
	repo  RepositoryPort
	cache *Cache
	group singleflight.Group
}

// NewService builds Service instance. cache may be nil.
func NewService(repo RepositoryPort, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// GetDashboardSummary returns the inventory statistics, served from the
// versioned cache when warm.
func (s *Service) GetDashboardSummary(ctx context.Context) envelope.Result[DashboardSummary] {
	return envelope.Call(ctx, fallbackSummaryMessage, func(ctx context.Context) (DashboardSummary, error) {
		key, err := s.cache.BuildKey(ctx, "inventory", "dashboard")
		if err != nil {
			return DashboardSummary{}, err
		}

		value, err := s.singleflightLoad(ctx, key)
		if err != nil {
			return DashboardSummary{}, err
		}
		return value, nil
	})
}

func (s *Service) singleflightLoad(ctx context.Context, key string) (DashboardSummary, error) {
	resultChan := s.group.DoChan(key, func() (interface{}, error) {
		var summary DashboardSummary
		err := s.cache.FetchJSON(ctx, key, &summary, func(ctx context.Context) (interface{}, error) {
			loaded, err := s.repo.GetDashboardSummary(ctx)
			if err != nil {
				return nil, err
			}
			if loaded == nil {
				return nil, envelope.Msg(NoDataMessage)
			}
			return loaded, nil
		})
		return summary, err
	})
	select {
	case <-ctx.Done():
		return DashboardSummary{}, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return DashboardSummary{}, res.Err
		}
		return res.Val.(DashboardSummary), nil
	}
}

// WarmCache forces a fresh load of the dashboard summary so the next reader
// hits the cache. Used by the background worker.
func (s *Service) WarmCache(ctx context.Context) error {
	if err := s.cache.Bump(ctx); err != nil {
		return err
	}
	res := s.GetDashboardSummary(ctx)
	if !res.OK() {
		return envelope.Msg(res.Message())
	}
	return nil
}
