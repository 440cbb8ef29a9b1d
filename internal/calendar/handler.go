package calendar

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-retail/backoffice/internal/platform/httpx"
)

// Handler serves the due-calendar endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers calendar routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listDueCalendar)
}

func (h *Handler) listDueCalendar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))

	q := DueCalendarQuery{Limit: limit}
	if v := query.Get("start_date"); v != "" {
		if _, err := time.Parse(dateLayout, v); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Date", "start_date must be formatted YYYY-MM-DD")
			return
		}
		q.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		if _, err := time.Parse(dateLayout, v); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Date", "end_date must be formatted YYYY-MM-DD")
			return
		}
		q.EndDate = &v
	}

	res := h.service.GetDueCalendar(r.Context(), q)
	if !res.OK() {
		h.logger.Error("list due calendar", slog.String("error", res.Message()))
		httpx.JSON(w, http.StatusBadGateway, res)
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}
