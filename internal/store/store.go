// Package store provides the trip data sources behind the dashboard.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vangoframework/wayfarer/internal/domain"
)

// Lookup errors
var (
	ErrTripNotFound     = errors.New("trip not found")
	ErrTravelerNotFound = errors.New("traveler not found")
)

// TripStore is the read side of trip data used by the handlers.
type TripStore interface {
	// ListTrips returns a traveler's trips ordered by start date.
	ListTrips(ctx context.Context, travelerID uuid.UUID) ([]domain.Trip, error)
	// GetTrip returns one trip owned by the traveler.
	GetTrip(ctx context.Context, travelerID, tripID uuid.UUID) (*domain.Trip, error)
	// FindTravelerByEmail matches the e-mail case-insensitively.
	FindTravelerByEmail(ctx context.Context, email string) (*domain.Traveler, error)
}
