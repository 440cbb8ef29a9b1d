package loans

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-retail/backoffice/internal/platform/httpx"
)

// Handler serves the loan endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers loan routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listActiveLoans)
}

func (h *Handler) listActiveLoans(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))

	res := h.service.GetActiveLoans(r.Context(), ActiveLoanQuery{
		SearchTerm: query.Get("search"),
		Limit:      limit,
		Offset:     offset,
	})
	if !res.OK() {
		h.logger.Error("list active loans", slog.String("error", res.Message()))
		httpx.JSON(w, http.StatusBadGateway, res)
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}
