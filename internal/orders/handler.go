package orders

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-retail/backoffice/internal/platform/httpx"
)

// Handler serves the order endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers order routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/{orderID}", h.getOrderDetails)
	r.Post("/{orderID}/payments", h.createPayment)
}

func (h *Handler) getOrderDetails(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil || orderID <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Order ID", "order id must be a positive integer")
		return
	}

	res := h.service.GetOrderDetails(r.Context(), orderID)
	switch {
	case res.OK():
		httpx.JSON(w, http.StatusOK, res)
	case res.Message() == NotFoundMessage:
		httpx.JSON(w, http.StatusNotFound, res)
	default:
		h.logger.Error("get order details", slog.Int64("order_id", orderID), slog.String("error", res.Message()))
		httpx.JSON(w, http.StatusBadGateway, res)
	}
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil || orderID <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Order ID", "order id must be a positive integer")
		return
	}

	var req CreatePaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	res := h.service.CreatePayment(r.Context(), req.ToInput(orderID))
	if !res.OK() {
		h.logger.Error("create payment", slog.Int64("order_id", orderID), slog.String("error", res.Message()))
		httpx.JSON(w, http.StatusBadGateway, res)
		return
	}
	httpx.JSON(w, http.StatusCreated, res)
}
