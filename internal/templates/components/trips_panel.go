package components

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/vangoframework/wayfarer/internal/domain"
	"github.com/vangoframework/wayfarer/internal/templates/markup"
)

const (
	// TripSkeletonCount is the number of placeholders shown while loading.
	TripSkeletonCount = 3
	// MaxPanelTrips caps the number of cards on the dashboard panel.
	MaxPanelTrips = 6
	// maxCardCities is how many city names a card lists before "+N more".
	maxCardCities = 3
)

// Mode is the render mode of the trips panel.
type Mode int

const (
	ModeLoading Mode = iota
	ModeEmpty
	ModeTrips
)

// TripsPanelProps are the inputs of TripsPanel.
type TripsPanelProps struct {
	Trips   []domain.Trip
	Loading bool
	// Now anchors the badge computation.
	Now time.Time
}

// PanelMode selects what the panel shows. Loading wins over any trips.
func PanelMode(props TripsPanelProps) Mode {
	switch {
	case props.Loading:
		return ModeLoading
	case len(props.Trips) == 0:
		return ModeEmpty
	default:
		return ModeTrips
	}
}

// VisibleTrips returns the leading trips that fit on the panel.
func VisibleTrips(trips []domain.Trip) []domain.Trip {
	if len(trips) > MaxPanelTrips {
		return trips[:MaxPanelTrips]
	}
	return trips
}

// TripsPanel renders the upcoming trips section of the dashboard.
func TripsPanel(props TripsPanelProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("section", "class", "trips-panel", "id", "trips-panel")
		m.Open("div", "class", "section-header")
		m.Elem("h2", "Upcoming Trips", "class", "section-title")
		m.Elem("a", "View all", "href", markup.URL(domain.RouteTrips), "class", "section-link")
		m.Close("div")

		switch PanelMode(props) {
		case ModeLoading:
			m.Child(tripSkeletons())
		case ModeEmpty:
			m.Child(tripsEmptyState())
		case ModeTrips:
			m.Child(TripGrid(VisibleTrips(props.Trips), props.Now))
		}

		m.Close("section")
		return m.Err()
	})
}

// TripGrid renders every trip given as a card, in order.
func TripGrid(trips []domain.Trip, now time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("div", "class", "trips-grid")
		for _, trip := range trips {
			m.Child(TripCard(trip, now))
		}
		m.Close("div")

		return m.Err()
	})
}

// TripCard renders a single trip linking to its detail page.
func TripCard(trip domain.Trip, now time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("a",
			"href", markup.URL(domain.TripRoute(trip.ID)),
			"class", "trip-card",
			"data-trip-id", trip.ID.String(),
		)

		m.Open("div", "class", "trip-cover")
		if trip.CoverImage != "" {
			m.Open("img", "src", markup.URL(trip.CoverImage), "alt", trip.Name, "class", "trip-cover-image", "loading", "lazy")
		} else {
			m.Raw(`<div class="trip-cover-placeholder" aria-hidden="true"></div>`)
		}
		m.Elem("span", domain.TripBadge(trip, now), "class", CN("trip-badge", tone(domain.BadgeTone(trip, now))))
		m.Close("div")

		m.Open("div", "class", "trip-body")
		m.Elem("h3", trip.Name, "class", "trip-name")
		if trip.Description != "" {
			m.Elem("p", trip.Description, "class", "trip-description")
		}
		m.Elem("p", domain.FormatDateRange(trip), "class", "trip-dates")
		if len(trip.Cities) > 0 {
			m.Open("ul", "class", "trip-cities")
			for i, city := range trip.Cities {
				if i == maxCardCities {
					m.Elem("li", "+"+strconv.Itoa(len(trip.Cities)-maxCardCities)+" more", "class", "trip-city trip-city-more")
					break
				}
				m.Elem("li", city.Name, "class", "trip-city")
			}
			m.Close("ul")
		}
		m.Close("div")

		m.Close("a")
		return m.Err()
	})
}

func tripSkeletons() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("div", "class", "trips-grid", "aria-busy", "true")
		for i := 0; i < TripSkeletonCount; i++ {
			m.Raw(`<div class="trip-skeleton">` +
				`<div class="skeleton skeleton-cover"></div>` +
				`<div class="skeleton skeleton-line"></div>` +
				`<div class="skeleton skeleton-line skeleton-line-short"></div>` +
				`</div>`)
		}
		m.Close("div")

		return m.Err()
	})
}

func tripsEmptyState() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(ctx, w)

		m.Open("div", "class", "trips-empty")
		m.Elem("h3", "No trips planned yet", "class", "trips-empty-title")
		m.Elem("p", "Start planning your next adventure and it will show up here.", "class", "trips-empty-copy")
		m.Elem("a", "Plan a trip", "href", markup.URL(domain.RouteNewTrip), "class", "btn btn-primary trips-empty-cta")
		m.Close("div")

		return m.Err()
	})
}
