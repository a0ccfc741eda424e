package handlers_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/wayfarer/internal/auth"
	"github.com/vangoframework/wayfarer/internal/config"
	"github.com/vangoframework/wayfarer/internal/domain"
	"github.com/vangoframework/wayfarer/internal/handlers"
	"github.com/vangoframework/wayfarer/internal/middleware"
	"github.com/vangoframework/wayfarer/internal/store"
)

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:          "8080",
		BaseURL:       "http://localhost:8080",
		Environment:   "development",
		SessionSecret: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
		SessionMaxAge: time.Hour,
	}
}

type testApp struct {
	router   http.Handler
	sessions *auth.SessionStore
	traveler domain.Traveler
	trips    []domain.Trip
}

// newTestApp wires the real routes to trips, defaulting to the demo data.
func newTestApp(t *testing.T, trips store.TripStore) *testApp {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	sessions := auth.NewSessionStore(cfg.SessionSecret, cfg.SessionMaxAge, false)

	app := &testApp{sessions: sessions}
	app.traveler, app.trips = store.DemoData(testNow)
	if trips == nil {
		mem := store.NewMemory()
		mem.Add(app.traveler, app.trips...)
		trips = mem
	}

	h := handlers.New(cfg, trips, sessions, logger)
	h.SetClock(func() time.Time { return testNow })

	r := chi.NewRouter()
	r.Use(middleware.Session(sessions))
	h.Routes(r)
	app.router = r

	return app
}

// sessionCookie returns a valid session cookie for the demo traveler.
func (a *testApp) sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, a.sessions.Set(rec, auth.NewSessionData(&a.traveler)))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func (a *testApp) get(t *testing.T, target string, signedIn bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if signedIn {
		req.AddCookie(a.sessionCookie(t))
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postLogin(email string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestProtectedRoutes_RedirectToLogin(t *testing.T) {
	app := newTestApp(t, nil)

	for _, path := range []string{"/", "/partials/trips", "/trips", "/trips/new", "/explore", "/calendar", "/settings"} {
		t.Run(path, func(t *testing.T) {
			rec := app.get(t, path, false)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}
}

func TestLogin_RendersAuthShell(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.get(t, "/login", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc := parse(t, rec)
	assert.Equal(t, 1, doc.Find(".auth-shell .auth-content form.login-form").Length())
}

func TestLogin_SignedInRedirectsHome(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.get(t, "/login", true)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLoginSubmit_KnownEmail(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.postLogin("  DEMO@wayfarer.travel ")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "wayfarer_session", cookies[0].Name)

	// The issued cookie opens the dashboard.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	home := httptest.NewRecorder()
	app.router.ServeHTTP(home, req)
	assert.Equal(t, http.StatusOK, home.Code)
}

func TestLoginSubmit_UnknownEmail(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.postLogin("nobody@example.com")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	doc := parse(t, rec)
	assert.NotEmpty(t, doc.Find(".login-error").Text())
	assert.Equal(t, "nobody@example.com", doc.Find(`input[name="email"]`).AttrOr("value", ""))
}

func TestLoginSubmit_BlankEmail(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.postLogin("   ")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_ClearsSession(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.get(t, "/logout", true)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHome_RendersLoadingPanel(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.get(t, "/", true)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parse(t, rec)
	assert.Equal(t, "Good morning, Demo", doc.Find(".dashboard-title").Text())
	assert.Equal(t, 3, doc.Find(".trips-slot .trip-skeleton").Length())
	assert.Equal(t, 0, doc.Find(".trip-card").Length())
}

func TestTripsPartial_RendersLoadedPanel(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.get(t, "/partials/trips", true)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parse(t, rec)
	assert.Equal(t, 0, doc.Find(".trip-skeleton").Length())
	assert.Equal(t, len(app.trips), doc.Find(".trip-card").Length())

	var badges []string
	doc.Find(".trip-badge").Each(func(_ int, s *goquery.Selection) {
		badges = append(badges, s.Text())
	})
	assert.Contains(t, badges, "In Progress")
	assert.Contains(t, badges, "Today!")
	assert.Contains(t, badges, "24 days away")
	assert.Contains(t, badges, "Past")
}

func TestTripsPartial_EmptyState(t *testing.T) {
	app := newTestApp(t, store.NewMemory())

	rec := app.get(t, "/partials/trips", true)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parse(t, rec)
	assert.Equal(t, "/trips/new", doc.Find(".trips-empty a").AttrOr("href", ""))
}

type refreshingStore struct {
	*store.Memory
	invalidated []uuid.UUID
}

func (s *refreshingStore) Invalidate(ctx context.Context, travelerID uuid.UUID) error {
	s.invalidated = append(s.invalidated, travelerID)
	return nil
}

func TestTripsPartial_RefreshInvalidatesCache(t *testing.T) {
	mem := store.NewMemory()
	rs := &refreshingStore{Memory: mem}
	app := newTestApp(t, rs)
	mem.Add(app.traveler, app.trips...)

	app.get(t, "/partials/trips", true)
	assert.Empty(t, rs.invalidated)

	rec := app.get(t, "/partials/trips?refresh=1", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uuid.UUID{app.traveler.ID}, rs.invalidated)
}

type failingStore struct {
	store.Memory
}

func (s *failingStore) ListTrips(ctx context.Context, travelerID uuid.UUID) ([]domain.Trip, error) {
	return nil, errors.New("connection refused")
}

func (s *failingStore) GetTrip(ctx context.Context, travelerID, tripID uuid.UUID) (*domain.Trip, error) {
	return nil, errors.New("connection refused")
}

func TestTripsPartial_StoreError(t *testing.T) {
	app := newTestApp(t, &failingStore{})

	rec := app.get(t, "/partials/trips", true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListTrips(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.get(t, "/trips", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, len(app.trips), parse(t, rec).Find(".trip-card").Length())
}

func TestListTrips_SavedShowsUpcoming(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.get(t, "/trips?filter=saved", true)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parse(t, rec)
	assert.Equal(t, "Saved", doc.Find(".tab.tab-active").Text())

	var want int
	for _, trip := range app.trips {
		if domain.Upcoming(trip, testNow) {
			want++
		}
	}
	require.NotZero(t, want)
	assert.Equal(t, want, doc.Find(".trip-card").Length())
	doc.Find(".trip-badge").Each(func(_ int, s *goquery.Selection) {
		assert.NotEqual(t, "Past", s.Text())
		assert.NotEqual(t, "In Progress", s.Text())
	})
}

func TestTripDetail(t *testing.T) {
	app := newTestApp(t, nil)
	trip := app.trips[0]

	rec := app.get(t, "/trips/"+trip.ID.String(), true)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := parse(t, rec)
	assert.Equal(t, trip.Name, doc.Find(".trip-detail-name").Text())
	assert.Equal(t, len(trip.Cities), doc.Find(".trip-route-stop").Length())
}

func TestTripDetail_NotFound(t *testing.T) {
	app := newTestApp(t, nil)

	assert.Equal(t, http.StatusNotFound, app.get(t, "/trips/"+uuid.NewString(), true).Code)
	assert.Equal(t, http.StatusNotFound, app.get(t, "/trips/not-a-uuid", true).Code)
}

func TestTripDetail_StoreError(t *testing.T) {
	app := newTestApp(t, &failingStore{})

	rec := app.get(t, "/trips/"+uuid.NewString(), true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExplore_FiltersByCity(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.get(t, domain.ExploreRoute("Cape Town"), true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Explore Cape Town", parse(t, rec).Find(".explore-result .section-title").Text())
}

func TestPlaceholderPages(t *testing.T) {
	app := newTestApp(t, nil)

	for _, path := range []string{"/trips/new", "/calendar", "/settings"} {
		t.Run(path, func(t *testing.T) {
			rec := app.get(t, path, true)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, parse(t, rec).Find(".placeholder").Length())
		})
	}
}
