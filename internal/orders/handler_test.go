package orders

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo RepositoryPort) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo))
	r := chi.NewRouter()
	r.Route("/api/orders", handler.MountRoutes)
	return r
}

func TestGetOrderDetailsEndpointNotFound(t *testing.T) {
	router := newTestRouter(&stubOrderRepo{detailsErr: ErrNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/999", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body struct {
		Data  *OrderDetails `json:"data"`
		Error *string       `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Nil(t, body.Data)
	require.NotNil(t, body.Error)
	require.Equal(t, "Order not found.", *body.Error)
}

func TestGetOrderDetailsEndpointRejectsBadID(t *testing.T) {
	router := newTestRouter(&stubOrderRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePaymentEndpoint(t *testing.T) {
	repo := &stubOrderRepo{confirmation: &PaymentConfirmation{
		PaymentID:           7,
		NewRemainingBalance: 0,
		OrderStatus:         OrderCompleted,
	}}
	router := newTestRouter(repo)

	payload := `{"account_id":1,"amount_paid":500,"payment_method":"cash","tendered_amount":600}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders/42/payments", strings.NewReader(payload)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Data  *PaymentConfirmation `json:"data"`
		Error *string              `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Nil(t, body.Error)
	require.Equal(t, int64(7), body.Data.PaymentID)
	require.Equal(t, OrderCompleted, body.Data.OrderStatus)
	require.Equal(t, int64(42), repo.lastInput.OrderID)
	require.Equal(t, 600.0, repo.lastInput.TenderedAmount)
}

func TestCreatePaymentEndpointValidation(t *testing.T) {
	router := newTestRouter(&stubOrderRepo{})

	payload := `{"account_id":1,"amount_paid":-5,"payment_method":"cash"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders/42/payments", strings.NewReader(payload)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
