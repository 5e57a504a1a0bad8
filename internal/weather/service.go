package weather

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ConditionFunc maps a numeric weather code to a human label. The mapping
// table itself is owned by the report package and passed in at construction.
type ConditionFunc func(code int) string

// Service orchestrates the three pipeline phases: geocode + fetch (Forecast),
// persist (Ingest) and re-read (Export). Each call runs to completion before
// the next begins; there is no internal retry or recovery.
type Service struct {
	geocoder  Geocoder
	provider  ForecastProvider
	store     Store
	condition ConditionFunc
	loc       *time.Location
}

// NewService creates a new Service. loc is the local timezone used to decide
// what "today" means when validating the provider's returned date.
func NewService(geocoder Geocoder, provider ForecastProvider, store Store, condition ConditionFunc, loc *time.Location) *Service {
	return &Service{
		geocoder:  geocoder,
		provider:  provider,
		store:     store,
		condition: condition,
		loc:       loc,
	}
}

// Forecast geocodes the ZIP code and fetches today's forecast, returning the
// assembled record without persisting it.
func (s *Service) Forecast(ctx context.Context, zip string) (DailyRecord, error) {
	coords, err := s.geocoder.Geocode(ctx, zip)
	if err != nil {
		return DailyRecord{}, fmt.Errorf("geocode %s: %w", zip, err)
	}

	fc, err := s.provider.FetchDaily(ctx, coords)
	if err != nil {
		return DailyRecord{}, fmt.Errorf("fetch forecast from %s: %w", s.provider.Name(), err)
	}

	// The provider is asked for exactly one day (today). A mismatch is worth
	// a warning but not a failure; the returned date wins.
	today := time.Now().In(s.loc).Format("2006-01-02")
	if fc.Date != today {
		log.Printf("warning: forecast date %s does not match expected local date %s", fc.Date, today)
	}

	return DailyRecord{
		Date:       fc.Date,
		Zip:        zip,
		Coords:     coords,
		Condition:  s.condition(fc.WeatherCode),
		TempHighF:  fc.TempHighF,
		TempLowF:   fc.TempLowF,
		PrecipMM:   fc.PrecipMM,
		WindMaxMPH: fc.WindMaxMPH,
	}, nil
}

// Ingest runs Forecast and upserts the result. Re-ingesting the same
// (date, zip) overwrites all non-key fields, last write wins.
func (s *Service) Ingest(ctx context.Context, zip string) (DailyRecord, error) {
	rec, err := s.Forecast(ctx, zip)
	if err != nil {
		return DailyRecord{}, err
	}

	if err := s.store.Upsert(ctx, rec); err != nil {
		return DailyRecord{}, fmt.Errorf("upsert %s: %w", rec.Key(), err)
	}
	return rec, nil
}

// Export reads back the stored record for (zip, date). A miss surfaces as
// ErrNotFound for the caller to render as a normal "no data" outcome.
func (s *Service) Export(ctx context.Context, zip, date string) (DailyRecord, error) {
	return s.store.Get(ctx, zip, date)
}

// Today returns the current date in the service's local timezone, formatted
// as YYYY-MM-DD.
func (s *Service) Today() string {
	return time.Now().In(s.loc).Format("2006-01-02")
}
