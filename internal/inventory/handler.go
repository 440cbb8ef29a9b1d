package inventory

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-retail/backoffice/internal/platform/envelope"
	"github.com/meridian-retail/backoffice/internal/platform/httpx"
	"github.com/meridian-retail/backoffice/internal/shared"
)

// Handler serves the inventory dashboard endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard", h.getDashboardSummary)
}

// dashboardView adds display-formatted fields on top of the raw summary.
// Formatting happens only here, at the presentation edge.
type dashboardView struct {
	DashboardSummary
	TotalInventoryValueDisplay string `json:"total_inventory_value_display"`
}

func (h *Handler) getDashboardSummary(w http.ResponseWriter, r *http.Request) {
	res := h.service.GetDashboardSummary(r.Context())
	if !res.OK() {
		h.logger.Error("get dashboard summary", slog.String("error", res.Message()))
		httpx.JSON(w, http.StatusBadGateway, envelope.Failure[dashboardView](res.Message()))
		return
	}

	summary := res.Value()
	httpx.JSON(w, http.StatusOK, envelope.Success(dashboardView{
		DashboardSummary:           summary,
		TotalInventoryValueDisplay: shared.FormatMoney(summary.TotalInventoryValue),
	}))
}
