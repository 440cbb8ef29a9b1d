package sales

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo RepositoryPort) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo))
	r := chi.NewRouter()
	r.Route("/api/sales", handler.MountRoutes)
	return r
}

func TestListSalesEndpoint(t *testing.T) {
	repo := &stubSalesRepo{items: []SalesListItem{
		{OrderID: 1, CustomerName: "Maya", Seller: "Dian", TotalAmount: 900, PaidAmount: 900, SaleType: SaleFullPayment, Status: OrderCompleted},
	}}
	router := newTestRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sales?search=maya&sale_type=full_payment&start_date=2026-08-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data  []SalesListItem `json:"data"`
		Error *string         `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Nil(t, body.Error)
	require.Len(t, body.Data, 1)
	require.Equal(t, SaleFullPayment, *repo.lastSeen.SaleType)
	require.Equal(t, "2026-08-01", *repo.lastSeen.StartDate)
}

func TestListSalesEndpointRejectsMalformedDate(t *testing.T) {
	repo := &stubSalesRepo{}
	router := newTestRouter(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sales?start_date=2026-13-40", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, repo.lastSeen.StartDate)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sales?end_date=soon", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
