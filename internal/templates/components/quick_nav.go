package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/domain"
	"github.com/vangoframework/wayfarer/internal/templates/markup"
)

// QuickNav renders the dashboard shortcut panel.
func QuickNav() templ.Component {
	return quickNav(domain.QuickNavItems)
}

func quickNav(items []domain.NavItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("nav", "class", "quick-nav", "aria-label", "Quick navigation")
		m.Open("ul", "class", "quick-nav-list")
		for _, item := range items {
			m.Open("li")
			m.Open("a",
				"href", markup.URL(item.Route),
				"class", CN("quick-nav-item", tone(item.Color)),
			)
			m.Raw(`<span class="quick-nav-icon" data-icon="` + templ.EscapeString(item.Icon) + `" aria-hidden="true"></span>`)
			m.Elem("span", item.Label, "class", "quick-nav-label")
			m.Close("a")
			m.Close("li")
		}
		m.Close("ul")
		m.Close("nav")

		return m.Err()
	})
}
