package catalog

import (
	"context"
	"encoding/json"

	"github.com/clement8426/trail-mosaic-sub000/internal/db"
	"github.com/clement8426/trail-mosaic-sub000/internal/shared/geo"
)

// Load reads the catalog from Postgres. It is an alternative seed source
// for deployments that keep the fixture data in a database; the service
// still treats the result as immutable.
func Load(ctx context.Context, q db.Querier) (*Catalog, error) {
	trails, err := loadTrails(ctx, q)
	if err != nil {
		return nil, err
	}
	events, err := loadEvents(ctx, q)
	if err != nil {
		return nil, err
	}
	sessions, err := loadSessions(ctx, q)
	if err != nil {
		return nil, err
	}
	return New(trails, events, sessions, fixtureUsers, fixtureRegions), nil
}

func loadTrails(ctx context.Context, q db.Querier) ([]Trail, error) {
	rows, err := q.Query(ctx, `
		SELECT id, name, location, lng, lat, description, image_url,
		       distance_km, elevation_m, difficulty, trail_type,
		       bike_types, obstacles, rating, reviews, COALESCE(region,'')
		FROM trails
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trails []Trail
	for rows.Next() {
		var t Trail
		var lng, lat float64
		var obstacles []byte
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &lng, &lat, &t.Description, &t.ImageURL,
			&t.DistanceKm, &t.ElevationM, &t.Difficulty, &t.TrailType,
			&t.BikeTypes, &obstacles, &t.Rating, &t.Reviews, &t.Region); err != nil {
			return nil, err
		}
		t.Coordinates = geo.Coordinate{lng, lat}
		if len(obstacles) > 0 {
			if err := json.Unmarshal(obstacles, &t.Obstacles); err != nil {
				return nil, err
			}
		}
		trails = append(trails, t)
	}
	return trails, rows.Err()
}

func loadEvents(ctx context.Context, q db.Querier) ([]Event, error) {
	rows, err := q.Query(ctx, `
		SELECT id, title, description, date, location, image_url, category,
		       COALESCE(trail_id,''), COALESCE(region,''), lng, lat
		FROM events
		ORDER BY date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var lng, lat *float64
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.ImageURL,
			&e.Category, &e.TrailID, &e.Region, &lng, &lat); err != nil {
			return nil, err
		}
		if lng != nil && lat != nil {
			e.Coordinates = &geo.Coordinate{*lng, *lat}
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func loadSessions(ctx context.Context, q db.Querier) ([]RideSession, error) {
	rows, err := q.Query(ctx, `
		SELECT id, title, description, date, time, created_by, participants, trail_id
		FROM ride_sessions
		ORDER BY date, time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []RideSession
	for rows.Next() {
		var s RideSession
		var participants []byte
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Date, &s.Time, &s.CreatedBy,
			&participants, &s.TrailID); err != nil {
			return nil, err
		}
		if len(participants) > 0 {
			if err := json.Unmarshal(participants, &s.Participants); err != nil {
				return nil, err
			}
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
