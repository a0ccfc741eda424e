package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vangoframework/wayfarer/internal/domain"
)

// DBTX is the subset of *pgxpool.Pool used by Postgres.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres is a TripStore backed by PostgreSQL.
type Postgres struct {
	db DBTX
}

// NewPostgres creates a Postgres store on db.
func NewPostgres(db DBTX) *Postgres {
	return &Postgres{db: db}
}

const tripColumns = `id, name, description, start_date, end_date, cover_image, status`

// ListTrips implements TripStore.
func (p *Postgres) ListTrips(ctx context.Context, travelerID uuid.UUID) ([]domain.Trip, error) {
	rows, err := p.db.Query(ctx, `
		SELECT `+tripColumns+`
		FROM trips
		WHERE traveler_id = $1
		ORDER BY start_date, created_at
	`, uuidToPgUUID(travelerID))
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := p.loadCities(ctx, trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// GetTrip implements TripStore.
func (p *Postgres) GetTrip(ctx context.Context, travelerID, tripID uuid.UUID) (*domain.Trip, error) {
	row := p.db.QueryRow(ctx, `
		SELECT `+tripColumns+`
		FROM trips
		WHERE traveler_id = $1 AND id = $2
	`, uuidToPgUUID(travelerID), uuidToPgUUID(tripID))

	trip, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	trips := []domain.Trip{trip}
	if err := p.loadCities(ctx, trips); err != nil {
		return nil, err
	}
	return &trips[0], nil
}

// FindTravelerByEmail implements TripStore.
func (p *Postgres) FindTravelerByEmail(ctx context.Context, email string) (*domain.Traveler, error) {
	var (
		id       pgtype.UUID
		traveler domain.Traveler
	)
	err := p.db.QueryRow(ctx, `
		SELECT id, name, email
		FROM travelers
		WHERE lower(email) = lower($1)
	`, email).Scan(&id, &traveler.Name, &traveler.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTravelerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find traveler: %w", err)
	}

	traveler.ID = pgUUIDToUUID(id)
	return &traveler, nil
}

// loadCities fills in the ordered cities of each trip.
func (p *Postgres) loadCities(ctx context.Context, trips []domain.Trip) error {
	if len(trips) == 0 {
		return nil
	}

	ids := make([]string, len(trips))
	index := make(map[uuid.UUID]int, len(trips))
	for i, trip := range trips {
		ids[i] = trip.ID.String()
		index[trip.ID] = i
	}

	rows, err := p.db.Query(ctx, `
		SELECT trip_id, city_id, name
		FROM trip_cities
		WHERE trip_id = ANY($1::uuid[])
		ORDER BY trip_id, position
	`, ids)
	if err != nil {
		return fmt.Errorf("query trip cities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			tripID, cityID pgtype.UUID
			name           string
		)
		if err := rows.Scan(&tripID, &cityID, &name); err != nil {
			return fmt.Errorf("scan trip city: %w", err)
		}

		i, ok := index[pgUUIDToUUID(tripID)]
		if !ok {
			continue
		}
		trips[i].Cities = append(trips[i].Cities, domain.CityRef{ID: pgUUIDToUUID(cityID), Name: name})
	}
	return rows.Err()
}

func scanTrip(row pgx.Row) (domain.Trip, error) {
	var (
		trip        domain.Trip
		id          pgtype.UUID
		description pgtype.Text
		coverImage  pgtype.Text
		status      string
	)
	if err := row.Scan(&id, &trip.Name, &description, &trip.StartDate, &trip.EndDate, &coverImage, &status); err != nil {
		return domain.Trip{}, err
	}

	trip.ID = pgUUIDToUUID(id)
	trip.Description = pgTextToString(description)
	trip.CoverImage = pgTextToString(coverImage)
	trip.Status = domain.TripStatus(status)
	trip.StartDate = localDate(trip.StartDate)
	trip.EndDate = localDate(trip.EndDate)
	return trip, nil
}

// localDate reinterprets a DATE column, decoded as UTC midnight, as
// midnight of the same calendar day in the server's zone.
func localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// uuidToPgUUID converts uuid.UUID to pgtype.UUID.
func uuidToPgUUID(u uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: u, Valid: true}
}

// pgUUIDToUUID converts pgtype.UUID to uuid.UUID.
func pgUUIDToUUID(p pgtype.UUID) uuid.UUID {
	if !p.Valid {
		return uuid.UUID{}
	}
	return uuid.UUID(p.Bytes)
}

// pgTextToString converts pgtype.Text to a string.
func pgTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// toPgText converts a string to pgtype.Text, empty meaning NULL.
func toPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}
