package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vangoframework/wayfarer/internal/domain"
)

// Memory is an in-process TripStore used in demo mode and tests.
type Memory struct {
	mu        sync.RWMutex
	travelers map[uuid.UUID]domain.Traveler
	trips     map[uuid.UUID][]domain.Trip
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		travelers: make(map[uuid.UUID]domain.Traveler),
		trips:     make(map[uuid.UUID][]domain.Trip),
	}
}

// Add registers a traveler with their trips, replacing any previous entry.
func (m *Memory) Add(traveler domain.Traveler, trips ...domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.travelers[traveler.ID] = traveler
	m.trips[traveler.ID] = slices.Clone(trips)
}

// ListTrips implements TripStore.
func (m *Memory) ListTrips(ctx context.Context, travelerID uuid.UUID) ([]domain.Trip, error) {
	m.mu.RLock()
	trips := slices.Clone(m.trips[travelerID])
	m.mu.RUnlock()

	slices.SortStableFunc(trips, func(a, b domain.Trip) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return trips, nil
}

// GetTrip implements TripStore.
func (m *Memory) GetTrip(ctx context.Context, travelerID, tripID uuid.UUID) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, trip := range m.trips[travelerID] {
		if trip.ID == tripID {
			return &trip, nil
		}
	}
	return nil, ErrTripNotFound
}

// FindTravelerByEmail implements TripStore.
func (m *Memory) FindTravelerByEmail(ctx context.Context, email string) (*domain.Traveler, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email = strings.TrimSpace(email)
	for _, traveler := range m.travelers {
		if strings.EqualFold(traveler.Email, email) {
			return &traveler, nil
		}
	}
	return nil, ErrTravelerNotFound
}

// DemoTravelerEmail is the sign-in address of the seeded demo account.
const DemoTravelerEmail = "demo@wayfarer.travel"

// DemoData returns a traveler and trips dated relative to now, so the
// dashboard shows every badge kind.
func DemoData(now time.Time) (domain.Traveler, []domain.Trip) {
	day := func(offset int) time.Time {
		y, m, d := now.AddDate(0, 0, offset).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	}
	city := func(name string) domain.CityRef {
		return domain.CityRef{ID: uuid.NewSHA1(uuid.NameSpaceURL, []byte("city:"+name)), Name: name}
	}

	traveler := domain.Traveler{
		ID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte(DemoTravelerEmail)),
		Name:  "Demo Traveler",
		Email: DemoTravelerEmail,
	}

	trips := []domain.Trip{
		{
			ID:          uuid.New(),
			Name:        "Lisbon Long Weekend",
			Description: "Pastéis, trams and the Alfama at sunset.",
			StartDate:   day(-2),
			EndDate:     day(1),
			CoverImage:  "/static/img/destinations/lisbon.jpg",
			Cities:      []domain.CityRef{city("Lisbon"), city("Sintra")},
			Status:      domain.TripStatusOngoing,
		},
		{
			ID:        uuid.New(),
			Name:      "Day Trip to Kyoto",
			StartDate: day(0),
			EndDate:   day(0),
			Cities:    []domain.CityRef{city("Kyoto")},
			Status:    domain.TripStatusUpcoming,
		},
		{
			ID:          uuid.New(),
			Name:        "Southeast Asia Loop",
			Description: "Three weeks of street food and islands.",
			StartDate:   day(24),
			EndDate:     day(45),
			CoverImage:  "/static/img/destinations/bangkok.jpg",
			Cities: []domain.CityRef{
				city("Bangkok"), city("Chiang Mai"), city("Hanoi"), city("Hoi An"), city("Bali"),
			},
			Status: domain.TripStatusPlanning,
		},
		{
			ID:        uuid.New(),
			Name:      "Cape Town & Winelands",
			StartDate: day(60),
			EndDate:   day(70),
			Cities:    []domain.CityRef{city("Cape Town"), city("Stellenbosch")},
			Status:    domain.TripStatusUpcoming,
		},
		{
			ID:          uuid.New(),
			Name:        "Barcelona Spring Break",
			Description: "Gaudí, beaches and late dinners.",
			StartDate:   day(-40),
			EndDate:     day(-33),
			CoverImage:  "/static/img/destinations/barcelona.jpg",
			Cities:      []domain.CityRef{city("Barcelona")},
			Status:      domain.TripStatusCompleted,
		},
	}

	return traveler, trips
}
