package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubCalendarRepo struct {
	items    []CalendarItem
	err      error
	lastSeen DueCalendarQuery
}

func (r *stubCalendarRepo) ListDueCalendar(ctx context.Context, q DueCalendarQuery) ([]CalendarItem, error) {
	r.lastSeen = q
	return r.items, r.err
}

func TestGetDueCalendarDefaults(t *testing.T) {
	repo := &stubCalendarRepo{}
	svc := NewService(repo)

	res := svc.GetDueCalendar(context.Background(), DueCalendarQuery{})
	require.True(t, res.OK())
	require.Equal(t, 100, repo.lastSeen.Limit)
	require.Nil(t, repo.lastSeen.StartDate)
	require.Nil(t, repo.lastSeen.EndDate)
}

func TestGetDueCalendarPassesWindowThrough(t *testing.T) {
	repo := &stubCalendarRepo{items: []CalendarItem{
		{ScheduleID: 1, InstallmentID: 3, DueDate: "2026-09-02", AmountDue: 120, CustomerName: "Rudi", OrderID: 8, DaysRemaining: 2},
		{ScheduleID: 2, InstallmentID: 4, DueDate: "2026-08-28", AmountDue: 90, CustomerName: "Sari", OrderID: 9, DaysRemaining: -3},
	}}
	svc := NewService(repo)

	start, end := "2026-08-25", "2026-09-10"
	res := svc.GetDueCalendar(context.Background(), DueCalendarQuery{StartDate: &start, EndDate: &end, Limit: 10})
	require.True(t, res.OK())
	require.Equal(t, &start, repo.lastSeen.StartDate)
	require.Equal(t, 10, repo.lastSeen.Limit)

	items := res.Value()
	require.Len(t, items, 2)
	require.Equal(t, -3, items[1].DaysRemaining)
}

func TestGetDueCalendarErrorEnvelope(t *testing.T) {
	svc := NewService(&stubCalendarRepo{err: errors.New("canceling statement")})

	res := svc.GetDueCalendar(context.Background(), DueCalendarQuery{})
	require.False(t, res.OK())
	require.Equal(t, "canceling statement", res.Message())
}
