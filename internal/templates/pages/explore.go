package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/auth"
	"github.com/vangoframework/wayfarer/internal/domain"
	"github.com/vangoframework/wayfarer/internal/templates/components"
	"github.com/vangoframework/wayfarer/internal/templates/markup"
)

// Explore shows the destination search. A city filter featured in the
// gallery is highlighted above it.
func Explore(session *auth.SessionData, city string) templ.Component {
	return Layout("Explore", session, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("section", "class", "explore")
		m.Open("form", "method", "get", "action", markup.URL(domain.RouteExplore), "class", "explore-search")
		m.Open("input", "type", "search", "name", "city", "value", city, "placeholder", "Search a city", "class", "input")
		m.Elem("button", "Search", "type", "submit", "class", "btn btn-primary")
		m.Close("form")

		if city != "" {
			if d, ok := domain.FindDestination(city); ok {
				m.Open("div", "class", "explore-result")
				m.Elem("h1", "Explore "+d.City, "class", "section-title")
				m.Child(components.DestinationCard(d))
				m.Close("div")
			} else {
				m.Elem("p", "No featured destination matches \""+city+"\".", "class", "explore-empty")
			}
		}
		m.Close("section")

		m.Child(components.DestinationsGallery())

		return m.Err()
	}))
}

// Placeholder is shown for sections that are reachable from navigation
// but have no content yet.
func Placeholder(session *auth.SessionData, title, message string) templ.Component {
	return Layout(title, session, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("section", "class", "placeholder")
		m.Elem("h1", title, "class", "section-title")
		m.Elem("p", message, "class", "placeholder-copy")
		m.Elem("a", "Back to dashboard", "href", markup.URL(domain.RouteDashboard), "class", "btn btn-ghost")
		m.Close("section")

		return m.Err()
	}))
}
