package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"adboard/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter
// for HTTP: it holds a BoardUseCase to execute business logic, a
// validator for request bodies and a logger for structured logging.
type Handler struct {
	svc      port.BoardUseCase
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. The
// returned Handler registers handlers for each endpoint on a new
// chi.Router behind per-IP rate limiting and request-ID logging.
func NewHandler(svc port.BoardUseCase, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(),
	}
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(httprate.Limit(120, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))

	r.Route("/api", func(r chi.Router) {
		r.Get("/campaigns", h.handleCampaignsList)
		r.Get("/campaigns/{id}", h.handleCampaignDetail)
		r.Get("/campaigns/{id}/invoices/export", h.handleInvoicesExport)
		r.Get("/lineitems/{id}", h.handleLineItemDetail)
		r.Get("/invoices/{id}", h.handleInvoiceDetail)
		r.Patch("/invoices/{id}/adjustment", h.handleUpdateAdjustment)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requestID tags every request with a generated id so log lines of one
// request can be correlated.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}
