package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/domain"
	"github.com/vangoframework/wayfarer/internal/templates/markup"
)

// AuthShell frames sign-in content with the branding pane.
// content is rendered unmodified; nil leaves the content pane empty.
func AuthShell(content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("div", "class", "auth-shell")

		m.Open("aside", "class", "auth-brand")
		m.Open("a", "href", markup.URL(domain.RouteDashboard), "class", "auth-logo")
		m.Raw(`<span class="auth-logo-mark" aria-hidden="true"></span>`)
		m.Elem("span", "Wayfarer", "class", "auth-logo-name")
		m.Close("a")
		m.Elem("h1", "Plan your next adventure", "class", "auth-headline")
		m.Elem("p", "Organize trips, discover destinations and keep every itinerary in one place.", "class", "auth-copy")
		m.Open("ul", "class", "auth-features")
		for _, feature := range domain.AuthFeatures {
			m.Elem("li", feature, "class", "auth-feature")
		}
		m.Close("ul")
		m.Close("aside")

		m.Open("main", "class", "auth-content")
		m.Child(content)
		m.Close("main")

		m.Close("div")

		return m.Err()
	})
}

// LoginForm is the sign-in form placed inside AuthShell by the login page.
func LoginForm(email, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("form", "method", "post", "action", markup.URL(domain.RouteLogin), "class", "login-form")
		m.Elem("h2", "Welcome back", "class", "login-title")
		if errMsg != "" {
			m.Elem("p", errMsg, "class", "login-error", "role", "alert")
		}
		m.Elem("label", "Email", "for", "email", "class", "login-label")
		m.Open("input",
			"id", "email",
			"name", "email",
			"type", "email",
			"value", email,
			"required", "required",
			"autocomplete", "email",
			"class", "input",
		)
		m.Elem("button", "Sign in", "type", "submit", "class", "btn btn-primary")
		m.Close("form")

		return m.Err()
	})
}
