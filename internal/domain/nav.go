package domain

// NavItem is a dashboard shortcut.
type NavItem struct {
	Label string
	Icon  string
	Route string
	Color string
}

// Well-known routes
const (
	RouteDashboard  = "/"
	RouteTrips      = "/trips"
	RouteNewTrip    = "/trips/new"
	RouteSavedTrips = "/trips?filter=saved"
	RouteExplore    = "/explore"
	RouteCalendar   = "/calendar"
	RouteSettings   = "/settings"
	RouteLogin      = "/login"
	RouteLogout     = "/logout"
)

// QuickNavItems are the dashboard shortcuts, in display order.
var QuickNavItems = []NavItem{
	{Label: "Plan Trip", Icon: "plus", Route: RouteNewTrip, Color: "blue"},
	{Label: "My Trips", Icon: "map", Route: RouteTrips, Color: "green"},
	{Label: "Explore", Icon: "compass", Route: RouteExplore, Color: "purple"},
	{Label: "Saved", Icon: "bookmark", Route: RouteSavedTrips, Color: "pink"},
	{Label: "Calendar", Icon: "calendar", Route: RouteCalendar, Color: "orange"},
	{Label: "Settings", Icon: "settings", Route: RouteSettings, Color: "gray"},
}

// AuthFeatures are the feature tags on the sign-in branding pane.
var AuthFeatures = []string{
	"Smart itineraries",
	"Group planning",
	"Budget tracking",
	"Offline maps",
}
