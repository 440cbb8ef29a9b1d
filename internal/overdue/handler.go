package overdue

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-retail/backoffice/internal/platform/httpx"
)

// Handler serves the overdue-payment endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers overdue routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listOverduePayments)
}

func (h *Handler) listOverduePayments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))

	res := h.service.GetOverduePayments(r.Context(), OverdueQuery{
		SearchTerm: query.Get("search"),
		Limit:      limit,
	})
	if !res.OK() {
		h.logger.Error("list overdue payments", slog.String("error", res.Message()))
		httpx.JSON(w, http.StatusBadGateway, res)
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}
