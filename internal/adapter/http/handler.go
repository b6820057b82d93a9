package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"brandcollab/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the lifecycle use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.LifecycleUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. metrics, when not
// nil, is mounted at /metrics.
func NewHandler(svc port.LifecycleUseCase, logger *slog.Logger, metrics http.Handler) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, h.logRequests, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.requireActor)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/active", h.handleListActiveCampaigns)
			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Post("/transition", h.handleTransitionCampaign)
				r.Post("/applications", h.handleApply)
				r.Get("/applications", h.handleListCampaignApplications)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.Get("/", h.handleListMyApplications)
			r.Route("/{applicationID}", func(r chi.Router) {
				r.Get("/", h.handleGetApplication)
				r.Delete("/", h.handleWithdraw)
				r.Post("/decision", h.handleDecide)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
