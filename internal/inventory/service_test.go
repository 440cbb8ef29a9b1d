package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubInventoryRepo struct {
	summary *DashboardSummary
	err     error
	calls   int
}

func (r *stubInventoryRepo) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	r.calls++
	return r.summary, r.err
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestGetDashboardSummary(t *testing.T) {
	repo := &stubInventoryRepo{summary: &DashboardSummary{
		TotalInventoryValue: 125000.50,
		TotalProductCount:   321,
		LowStockItemCount:   4,
	}}
	svc := NewService(repo, newTestCache(t))

	res := svc.GetDashboardSummary(context.Background())
	require.True(t, res.OK())
	require.Equal(t, 125000.50, res.Value().TotalInventoryValue)
	require.Equal(t, int64(4), res.Value().LowStockItemCount)
}

func TestGetDashboardSummaryServedFromCache(t *testing.T) {
	repo := &stubInventoryRepo{summary: &DashboardSummary{TotalProductCount: 10}}
	svc := NewService(repo, newTestCache(t))

	first := svc.GetDashboardSummary(context.Background())
	second := svc.GetDashboardSummary(context.Background())
	require.True(t, first.OK())
	require.True(t, second.OK())
	require.Equal(t, 1, repo.calls)
}

func TestGetDashboardSummaryZeroRowsIsContractViolation(t *testing.T) {
	repo := &stubInventoryRepo{}
	svc := NewService(repo, newTestCache(t))

	res := svc.GetDashboardSummary(context.Background())
	require.False(t, res.OK())
	require.Equal(t, "No dashboard data available.", res.Message())
}

func TestGetDashboardSummaryWithoutCache(t *testing.T) {
	repo := &stubInventoryRepo{summary: &DashboardSummary{TotalProductCount: 2}}
	svc := NewService(repo, nil)

	res := svc.GetDashboardSummary(context.Background())
	require.True(t, res.OK())
	require.Equal(t, int64(2), res.Value().TotalProductCount)
}

func TestGetDashboardSummaryRepoError(t *testing.T) {
	repo := &stubInventoryRepo{err: errors.New("permission denied")}
	svc := NewService(repo, newTestCache(t))

	res := svc.GetDashboardSummary(context.Background())
	require.False(t, res.OK())
	require.Equal(t, "permission denied", res.Message())
}

func TestWarmCacheRefreshesVersion(t *testing.T) {
	repo := &stubInventoryRepo{summary: &DashboardSummary{TotalProductCount: 7}}
	cache := newTestCache(t)
	svc := NewService(repo, cache)

	require.True(t, svc.GetDashboardSummary(context.Background()).OK())
	require.Equal(t, 1, repo.calls)

	require.NoError(t, svc.WarmCache(context.Background()))
	require.Equal(t, 2, repo.calls)

	// Readers after the warmup hit the fresh cache entry.
	require.True(t, svc.GetDashboardSummary(context.Background()).OK())
	require.Equal(t, 2, repo.calls)
}
