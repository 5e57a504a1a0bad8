package weather

import (
	"context"
)

// Geocoder maps a postal code to coordinates via an external lookup service.
type Geocoder interface {
	Geocode(ctx context.Context, zip string) (Coordinates, error)
}

// ForecastProvider abstracts an external weather source (e.g. Open-Meteo).
// Implementations request exactly one forecast day.
type ForecastProvider interface {
	Name() string
	FetchDaily(ctx context.Context, coords Coordinates) (DailyForecast, error)
}

// Store is the contract the MySQL store (and any future persistent store) must satisfy.
type Store interface {
	// Upsert inserts a row for (Date, Zip) or overwrites the non-key fields
	// of an existing row for the same key. CreatedAt is never updated.
	Upsert(ctx context.Context, rec DailyRecord) error

	// Get returns the stored record for the exact (zip, date) key.
	// A miss is reported as ErrNotFound, which callers treat as a normal result.
	Get(ctx context.Context, zip, date string) (DailyRecord, error)
}
