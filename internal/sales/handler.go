package sales

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-retail/backoffice/internal/platform/httpx"
)

// Handler serves the sales-list endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers sales routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listSales)
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))

	q := SalesListQuery{
		SearchTerm: query.Get("search"),
		Limit:      limit,
		Offset:     offset,
	}
	if v := query.Get("sale_type"); v != "" {
		saleType := SaleType(v)
		q.SaleType = &saleType
	}
	if v := query.Get("status"); v != "" {
		status := OrderStatus(v)
		q.Status = &status
	}
	if v := query.Get("start_date"); v != "" {
		if _, err := parseDateInput(v); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Date", "start_date must be RFC 3339 or YYYY-MM-DD")
			return
		}
		q.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		if _, err := parseDateInput(v); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Date", "end_date must be RFC 3339 or YYYY-MM-DD")
			return
		}
		q.EndDate = &v
	}

	res := h.service.GetSalesList(r.Context(), q)
	if !res.OK() {
		h.logger.Error("list sales", slog.String("error", res.Message()))
		httpx.JSON(w, http.StatusBadGateway, res)
		return
	}
	httpx.JSON(w, http.StatusOK, res)
}
