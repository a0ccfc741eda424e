package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/vangoframework/wayfarer/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema files in name order.
// Every statement is idempotent, so Migrate may run on each deploy.
func Migrate(ctx context.Context, db DBTX) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		sql, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}

// Seed inserts a traveler with their trips. Existing rows are left untouched.
func Seed(ctx context.Context, db DBTX, traveler domain.Traveler, trips []domain.Trip) error {
	_, err := db.Exec(ctx, `
		INSERT INTO travelers (id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`, uuidToPgUUID(traveler.ID), traveler.Name, traveler.Email)
	if err != nil {
		return fmt.Errorf("insert traveler: %w", err)
	}

	for _, trip := range trips {
		_, err := db.Exec(ctx, `
			INSERT INTO trips (id, traveler_id, name, description, start_date, end_date, cover_image, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT DO NOTHING
		`,
			uuidToPgUUID(trip.ID),
			uuidToPgUUID(traveler.ID),
			trip.Name,
			toPgText(trip.Description),
			trip.StartDate,
			trip.EndDate,
			toPgText(trip.CoverImage),
			string(trip.Status),
		)
		if err != nil {
			return fmt.Errorf("insert trip %s: %w", trip.ID, err)
		}

		for i, city := range trip.Cities {
			_, err := db.Exec(ctx, `
				INSERT INTO trip_cities (trip_id, position, city_id, name)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT DO NOTHING
			`, uuidToPgUUID(trip.ID), i, uuidToPgUUID(city.ID), city.Name)
			if err != nil {
				return fmt.Errorf("insert city %q of trip %s: %w", city.Name, trip.ID, err)
			}
		}
	}
	return nil
}
