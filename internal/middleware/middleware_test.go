package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/wayfarer/internal/auth"
	"github.com/vangoframework/wayfarer/internal/middleware"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
})

func TestRequireAuth_RedirectsWithoutSession(t *testing.T) {
	rec := httptest.NewRecorder()
	middleware.RequireAuth(okHandler).ServeHTTP(rec, httptest.NewRequest("GET", "/trips", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuth_HTMXGetsRedirectHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/partials/trips", nil)
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	middleware.RequireAuth(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("HX-Redirect"))
}

func TestRequireAuth_PassesWithSession(t *testing.T) {
	req := httptest.NewRequest("GET", "/trips", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), &auth.SessionData{TravelerID: uuid.New()}))

	rec := httptest.NewRecorder()
	middleware.RequireAuth(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSession_LoadsCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)
	session := &auth.SessionData{TravelerID: uuid.New(), Name: "Ana"}

	w := httptest.NewRecorder()
	require.NoError(t, store.Set(w, session))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(w.Result().Cookies()[0])

	var got *auth.SessionData
	handler := middleware.Session(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetSession(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, session.TravelerID, got.TravelerID)
}

func TestSession_ClearsInvalidCookie(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "wayfarer_session", Value: "garbage"})

	rec := httptest.NewRecorder()
	middleware.Session(store)(okHandler).ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSession_NoCookieLeavesResponseAlone(t *testing.T) {
	store := auth.NewSessionStore(testSecret, time.Hour, false)

	rec := httptest.NewRecorder()
	middleware.Session(store)(okHandler).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Empty(t, rec.Result().Cookies())
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	middleware.Recovery(logger)(panicking).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "kaboom")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	middleware.Logger(logger)(teapot).ServeHTTP(rec, httptest.NewRequest("GET", "/trips", nil))

	assert.Contains(t, buf.String(), "path=/trips")
	assert.Contains(t, buf.String(), "status=418")

	// Health probes stay below the default info level.
	buf.Reset()
	middleware.Logger(logger)(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
	assert.Empty(t, buf.String())
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/trips/{tripID}", okHandler)

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/trips/"+id, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, family := range families {
		if family.GetName() != "wayfarer_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "route" {
					assert.Equal(t, "/trips/{tripID}", label.GetValue())
				}
			}
			total += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(3), total)
}
