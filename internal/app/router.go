package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/meridian-retail/backoffice/internal/calendar"
	"github.com/meridian-retail/backoffice/internal/inventory"
	"github.com/meridian-retail/backoffice/internal/loans"
	"github.com/meridian-retail/backoffice/internal/observability"
	"github.com/meridian-retail/backoffice/internal/orders"
	"github.com/meridian-retail/backoffice/internal/overdue"
	"github.com/meridian-retail/backoffice/internal/sales"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	LoansHandler     *loans.Handler
	OverdueHandler   *overdue.Handler
	OrdersHandler    *orders.Handler
	SalesHandler     *sales.Handler
	CalendarHandler  *calendar.Handler
	InventoryHandler *inventory.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with Meridian defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		if params.LoansHandler != nil {
			r.Route("/loans", params.LoansHandler.MountRoutes)
		}
		if params.OverdueHandler != nil {
			r.Route("/overdue-payments", params.OverdueHandler.MountRoutes)
		}
		if params.OrdersHandler != nil {
			r.Route("/orders", params.OrdersHandler.MountRoutes)
		}
		if params.SalesHandler != nil {
			r.Route("/sales", params.SalesHandler.MountRoutes)
		}
		if params.CalendarHandler != nil {
			r.Route("/calendar", params.CalendarHandler.MountRoutes)
		}
		if params.InventoryHandler != nil {
			r.Route("/inventory", params.InventoryHandler.MountRoutes)
		}
	})

	return r
}
