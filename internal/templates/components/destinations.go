package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/domain"
	"github.com/vangoframework/wayfarer/internal/templates/markup"
)

// DestinationsGallery renders the popular destinations section.
func DestinationsGallery() templ.Component {
	return destinationsGallery(domain.PopularDestinations)
}

func destinationsGallery(destinations []domain.Destination) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("section", "class", "destinations")
		m.Open("div", "class", "section-header")
		m.Elem("h2", "Popular Destinations", "class", "section-title")
		m.Elem("a", "Explore all", "href", markup.URL(domain.RouteExplore), "class", "section-link")
		m.Close("div")

		m.Open("div", "class", "destinations-grid")
		for _, d := range destinations {
			m.Child(DestinationCard(d))
		}
		m.Close("div")
		m.Close("section")

		return m.Err()
	})
}

// DestinationCard renders one gallery entry linking to the city search.
func DestinationCard(d domain.Destination) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("a",
			"href", markup.URL(domain.ExploreRoute(d.City)),
			"class", "destination-card",
			"data-destination-id", d.ID,
		)
		m.Open("img", "src", markup.URL(d.Image), "alt", d.City, "class", "destination-image", "loading", "lazy")
		m.Open("div", "class", "destination-body")
		m.Elem("h3", d.City, "class", "destination-city")
		m.Elem("p", d.Country, "class", "destination-country")
		m.Open("div", "class", "destination-meta")
		m.Elem("span", strconv.FormatFloat(d.Rating, 'f', 1, 64), "class", "destination-rating")
		m.Elem("span", d.Price.Glyph(), "class", "destination-price")
		m.Close("div")
		m.Close("div")
		m.Close("a")

		return m.Err()
	})
}
