package pages

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/auth"
	"github.com/vangoframework/wayfarer/internal/templates/components"
	"github.com/vangoframework/wayfarer/internal/templates/markup"
)

// TripsPartialRoute serves the filled trips panel to the dashboard.
const TripsPartialRoute = "/partials/trips"

// Dashboard renders the signed-in home page. The trips panel starts in its
// loading state and htmx swaps in the loaded panel once the page is shown.
func Dashboard(session *auth.SessionData, now time.Time) templ.Component {
	return Layout("Dashboard", session, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("div", "class", "dashboard")
		m.Open("div", "class", "dashboard-header")
		m.Elem("h1", greeting(session, now), "class", "dashboard-title")
		m.Elem("p", "Where to next?", "class", "dashboard-subtitle")
		m.Close("div")

		m.Child(components.QuickNav())

		m.Open("div",
			"class", "trips-slot",
			"hx-get", TripsPartialRoute,
			"hx-trigger", "load",
			"hx-swap", "innerHTML",
		)
		m.Child(components.TripsPanel(components.TripsPanelProps{Loading: true, Now: now}))
		m.Close("div")

		m.Child(components.DestinationsGallery())
		m.Close("div")

		return m.Err()
	}))
}

func greeting(session *auth.SessionData, now time.Time) string {
	var salutation string
	switch h := now.Hour(); {
	case h < 12:
		salutation = "Good morning"
	case h < 18:
		salutation = "Good afternoon"
	default:
		salutation = "Good evening"
	}

	if session == nil || session.FirstName() == "" {
		return salutation
	}
	return salutation + ", " + session.FirstName()
}
