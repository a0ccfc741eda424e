package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle tag of a trip.
type TripStatus string

// Trip statuses
const (
	TripStatusPlanning  TripStatus = "PLANNING"
	TripStatusUpcoming  TripStatus = "UPCOMING"
	TripStatusOngoing   TripStatus = "ONGOING"
	TripStatusCompleted TripStatus = "COMPLETED"
	TripStatusCancelled TripStatus = "CANCELLED"
)

// Valid reports whether s is one of the known statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusPlanning, TripStatusUpcoming, TripStatusOngoing,
		TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// CityRef is a city visited on a trip.
type CityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Trip is a planned journey owned by a traveler.
// Components only read trips; they never modify them.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Cities      []CityRef  `json:"cities"`
	Status      TripStatus `json:"status"`
}

// Traveler is the owner of trips and the subject of a session.
type Traveler struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// TripRoute returns the detail route of a trip.
func TripRoute(id uuid.UUID) string {
	return "/trips/" + id.String()
}
