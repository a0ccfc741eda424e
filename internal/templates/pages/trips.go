package pages

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/auth"
	"github.com/vangoframework/wayfarer/internal/domain"
	"github.com/vangoframework/wayfarer/internal/templates/components"
	"github.com/vangoframework/wayfarer/internal/templates/markup"
)

// Trips lists all of a traveler's trips, or only saved ones.
func Trips(session *auth.SessionData, trips []domain.Trip, saved bool, now time.Time) templ.Component {
	title := "My Trips"
	if saved {
		title = "Saved Trips"
	}

	return Layout(title, session, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("section", "class", "trips-page")
		m.Open("div", "class", "section-header")
		m.Elem("h1", title, "class", "section-title")
		m.Elem("a", "Plan Trip", "href", markup.URL(domain.RouteNewTrip), "class", "btn btn-primary")
		m.Close("div")

		m.Open("nav", "class", "tabs")
		m.Elem("a", "All", "href", markup.URL(domain.RouteTrips), "class", components.CN("tab", activeIf(!saved)))
		m.Elem("a", "Saved", "href", markup.URL(domain.RouteSavedTrips), "class", components.CN("tab", activeIf(saved)))
		m.Close("nav")

		if len(trips) == 0 {
			m.Elem("p", "Nothing here yet.", "class", "trips-page-empty")
		} else {
			m.Child(components.TripGrid(trips, now))
		}
		m.Close("section")

		return m.Err()
	}))
}

// TripDetail shows one trip with its full city list.
func TripDetail(session *auth.SessionData, trip domain.Trip, now time.Time) templ.Component {
	return Layout(trip.Name, session, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("article", "class", "trip-detail", "data-trip-id", trip.ID.String())
		if trip.CoverImage != "" {
			m.Open("img", "src", markup.URL(trip.CoverImage), "alt", trip.Name, "class", "trip-detail-cover")
		}
		m.Open("header", "class", "trip-detail-header")
		m.Elem("h1", trip.Name, "class", "trip-detail-name")
		m.Elem("span", domain.TripBadge(trip, now), "class", "trip-badge tone-"+domain.BadgeTone(trip, now))
		m.Close("header")
		m.Elem("p", domain.FormatDateRange(trip), "class", "trip-dates")
		if trip.Description != "" {
			m.Elem("p", trip.Description, "class", "trip-description")
		}

		if len(trip.Cities) > 0 {
			m.Elem("h2", "Route", "class", "trip-detail-subtitle")
			m.Open("ol", "class", "trip-route")
			for _, city := range trip.Cities {
				m.Open("li", "class", "trip-route-stop")
				m.Elem("a", city.Name, "href", markup.URL(domain.ExploreRoute(city.Name)))
				m.Close("li")
			}
			m.Close("ol")
		}

		m.Elem("a", "Back to trips", "href", markup.URL(domain.RouteTrips), "class", "btn btn-ghost")
		m.Close("article")

		return m.Err()
	}))
}

func activeIf(active bool) string {
	if active {
		return "tab-active"
	}
	return ""
}
