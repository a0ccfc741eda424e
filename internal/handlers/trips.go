package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vangoframework/wayfarer/internal/domain"
	"github.com/vangoframework/wayfarer/internal/middleware"
	"github.com/vangoframework/wayfarer/internal/store"
	"github.com/vangoframework/wayfarer/internal/templates/components"
	"github.com/vangoframework/wayfarer/internal/templates/pages"
)

// invalidator is implemented by stores that cache trip lists.
type invalidator interface {
	Invalidate(ctx context.Context, travelerID uuid.UUID) error
}

// Home renders the dashboard. Trips are filled in by TripsPartial.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	h.render(w, r, http.StatusOK, pages.Dashboard(session, h.now()))
}

// TripsPartial renders the loaded trips panel (htmx partial).
// ?refresh=1 drops any cached trip list first.
func (h *Handlers) TripsPartial(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	session := middleware.GetSession(ctx)

	if r.URL.Query().Get("refresh") != "" {
		if inv, ok := h.trips.(invalidator); ok {
			if err := inv.Invalidate(ctx, session.TravelerID); err != nil {
				h.logger.Warn("failed to invalidate trips cache", "traveler_id", session.TravelerID, "error", err)
			}
		}
	}

	trips, err := h.trips.ListTrips(ctx, session.TravelerID)
	if err != nil {
		h.logger.Error("failed to list trips", "traveler_id", session.TravelerID, "error", err)
		http.Error(w, "Failed to load trips", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, components.TripsPanel(components.TripsPanelProps{
		Trips: trips,
		Now:   h.now(),
	}))
}

// ListTrips shows every trip, or only upcoming ones with ?filter=saved.
func (h *Handlers) ListTrips(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	session := middleware.GetSession(ctx)

	trips, err := h.trips.ListTrips(ctx, session.TravelerID)
	if err != nil {
		h.logger.Error("failed to list trips", "traveler_id", session.TravelerID, "error", err)
		http.Error(w, "Failed to load trips", http.StatusInternalServerError)
		return
	}

	now := h.now()
	saved := r.URL.Query().Get("filter") == "saved"
	if saved {
		var upcoming []domain.Trip
		for _, trip := range trips {
			if domain.Upcoming(trip, now) {
				upcoming = append(upcoming, trip)
			}
		}
		trips = upcoming
	}

	h.render(w, r, http.StatusOK, pages.Trips(session, trips, saved, now))
}

// TripDetail shows one trip.
func (h *Handlers) TripDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()
	session := middleware.GetSession(ctx)

	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	trip, err := h.trips.GetTrip(ctx, session.TravelerID, tripID)
	if errors.Is(err, store.ErrTripNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to get trip", "trip_id", tripID, "error", err)
		http.Error(w, "Failed to load trip", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, pages.TripDetail(session, *trip, h.now()))
}

// Explore shows the destination search, optionally filtered by ?city=.
func (h *Handlers) Explore(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	h.render(w, r, http.StatusOK, pages.Explore(session, r.URL.Query().Get("city")))
}

// NewTrip is the target of the trip-creation links.
func (h *Handlers) NewTrip(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	h.render(w, r, http.StatusOK, pages.Placeholder(session, "Plan a Trip", "Trip planning opens here soon."))
}

// Calendar is the target of the calendar shortcut.
func (h *Handlers) Calendar(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	h.render(w, r, http.StatusOK, pages.Placeholder(session, "Calendar", "Your travel calendar opens here soon."))
}

// Settings is the target of the settings shortcut.
func (h *Handlers) Settings(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	h.render(w, r, http.StatusOK, pages.Placeholder(session, "Settings", "Signed in as "+session.Email+"."))
}
