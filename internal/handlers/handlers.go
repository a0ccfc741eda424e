package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/auth"
	"github.com/vangoframework/wayfarer/internal/config"
	"github.com/vangoframework/wayfarer/internal/store"
)

// storeTimeout bounds every trip store call made while serving a request.
const storeTimeout = 5 * time.Second

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config   *config.Config
	trips    store.TripStore
	sessions *auth.SessionStore
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a new Handlers instance with all dependencies.
func New(
	cfg *config.Config,
	trips store.TripStore,
	sessions *auth.SessionStore,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		config:   cfg,
		trips:    trips,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock replaces the clock used for trip badges.
func (h *Handlers) SetClock(now func() time.Time) {
	h.now = now
}

// render writes c as an HTML response with the given status.
// The component is rendered to a buffer first so a failure still yields a clean 500.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
