package domain

import (
	"net/url"
	"strings"
)

// PriceTier is the relative cost level of a destination.
type PriceTier int

// Price tiers
const (
	PriceBudget PriceTier = iota + 1
	PriceModerate
	PriceLuxury
)

// Glyph returns the dollar-sign rendering of the tier.
func (p PriceTier) Glyph() string {
	switch p {
	case PriceBudget:
		return "$"
	case PriceModerate:
		return "$$"
	case PriceLuxury:
		return "$$$"
	}
	return ""
}

// Destination is a featured place in the popular destinations gallery.
type Destination struct {
	ID      string
	City    string
	Country string
	Image   string
	Rating  float64
	Price   PriceTier
}

// PopularDestinations is the fixed gallery content, in display order.
var PopularDestinations = []Destination{
	{ID: "paris", City: "Paris", Country: "France", Image: "/static/img/destinations/paris.jpg", Rating: 4.8, Price: PriceLuxury},
	{ID: "tokyo", City: "Tokyo", Country: "Japan", Image: "/static/img/destinations/tokyo.jpg", Rating: 4.9, Price: PriceLuxury},
	{ID: "bali", City: "Bali", Country: "Indonesia", Image: "/static/img/destinations/bali.jpg", Rating: 4.7, Price: PriceModerate},
	{ID: "new-york", City: "New York", Country: "United States", Image: "/static/img/destinations/new-york.jpg", Rating: 4.6, Price: PriceLuxury},
	{ID: "barcelona", City: "Barcelona", Country: "Spain", Image: "/static/img/destinations/barcelona.jpg", Rating: 4.7, Price: PriceModerate},
	{ID: "lisbon", City: "Lisbon", Country: "Portugal", Image: "/static/img/destinations/lisbon.jpg", Rating: 4.6, Price: PriceBudget},
	{ID: "bangkok", City: "Bangkok", Country: "Thailand", Image: "/static/img/destinations/bangkok.jpg", Rating: 4.5, Price: PriceBudget},
	{ID: "cape-town", City: "Cape Town", Country: "South Africa", Image: "/static/img/destinations/cape-town.jpg", Rating: 4.7, Price: PriceModerate},
}

// ExploreRoute returns the search route filtered to a city.
func ExploreRoute(city string) string {
	return "/explore?city=" + url.QueryEscape(city)
}

// FindDestination looks up a gallery destination by city name, ignoring case.
func FindDestination(city string) (Destination, bool) {
	for _, d := range PopularDestinations {
		if strings.EqualFold(d.City, city) {
			return d, true
		}
	}
	return Destination{}, false
}
