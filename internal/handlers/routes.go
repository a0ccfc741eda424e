package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/vangoframework/wayfarer/internal/middleware"
	"github.com/vangoframework/wayfarer/internal/templates/pages"
)

// Routes registers the page routes on r. Session middleware must already be installed.
func (h *Handlers) Routes(r chi.Router) {
	// Public routes
	r.Get("/login", h.Login)
	r.Post("/login", h.LoginSubmit)
	r.Get("/logout", h.Logout)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/", h.Home)
		r.Get(pages.TripsPartialRoute, h.TripsPartial)
		r.Get("/trips", h.ListTrips)
		r.Get("/trips/new", h.NewTrip)
		r.Get("/trips/{tripID}", h.TripDetail)
		r.Get("/explore", h.Explore)
		r.Get("/calendar", h.Calendar)
		r.Get("/settings", h.Settings)
	})
}
