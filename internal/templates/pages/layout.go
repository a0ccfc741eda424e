// Package pages assembles components into full HTML documents.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/auth"
	"github.com/vangoframework/wayfarer/internal/domain"
	"github.com/vangoframework/wayfarer/internal/templates/markup"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// document writes the HTML skeleton around body.
func document(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Raw("<!DOCTYPE html>")
		m.Open("html", "lang", "en")
		m.Open("head")
		m.Raw(`<meta charset="utf-8">`)
		m.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Elem("title", title+" | Wayfarer")
		m.Open("link", "rel", "stylesheet", "href", "/static/css/app.css")
		m.Open("script", "src", htmxScript, "defer", "defer")
		m.Close("script")
		m.Close("head")
		m.Open("body")
		m.Child(body)
		m.Close("body")
		m.Close("html")

		return m.Err()
	})
}

// Layout wraps signed-in page content with the app header.
func Layout(title string, session *auth.SessionData, body templ.Component) templ.Component {
	return document(title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("div", "class", "app-shell")
		m.Open("header", "class", "header")
		m.Open("a", "href", markup.URL(domain.RouteDashboard), "class", "header-brand")
		m.Raw(`<span class="logo" aria-hidden="true"></span>`)
		m.Elem("span", "Wayfarer", "class", "app-name")
		m.Close("a")
		m.Open("nav", "class", "header-nav")
		m.Elem("a", "Trips", "href", markup.URL(domain.RouteTrips), "class", "nav-link")
		m.Elem("a", "Explore", "href", markup.URL(domain.RouteExplore), "class", "nav-link")
		if session != nil {
			m.Elem("span", session.Name, "class", "nav-user")
			m.Elem("a", "Sign out", "href", markup.URL(domain.RouteLogout), "class", "nav-link")
		}
		m.Close("nav")
		m.Close("header")

		m.Open("main", "class", "main-content")
		m.Child(body)
		m.Close("main")
		m.Close("div")

		return m.Err()
	}))
}
