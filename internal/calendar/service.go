package calendar

import (
	"context"

	"github.com/meridian-retail/backoffice/internal/platform/envelope"
)

const fallbackListMessage = "An unexpected error occurred while fetching the due calendar."

// RepositoryPort defines data access methods for the due calendar.
type RepositoryPort interface {
	ListDueCalendar(ctx context.Context, q DueCalendarQuery) ([]CalendarItem, error)
}

// Service exposes the due-calendar read operation with the uniform envelope.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// GetDueCalendar returns schedule items falling inside the window.
func (s *Service) GetDueCalendar(ctx context.Context, q DueCalendarQuery) envelope.Result[[]CalendarItem] {
	return envelope.Call(ctx, fallbackListMessage, func(ctx context.Context) ([]CalendarItem, error) {
		q.normalize()
		items, err := s.repo.ListDueCalendar(ctx, q)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []CalendarItem{}
		}
		return items, nil
	})
}
