package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zipcast/zipcast/internal/weather"
)

type stubStore struct {
	rec weather.DailyRecord
	err error
}

func (s *stubStore) Upsert(ctx context.Context, rec weather.DailyRecord) error { return nil }

func (s *stubStore) Get(ctx context.Context, zip, date string) (weather.DailyRecord, error) {
	if s.err != nil {
		return weather.DailyRecord{}, s.err
	}
	return s.rec, nil
}

func newTestApp(st weather.Store) *fiber.App {
	app := fiber.New()
	svc := weather.NewService(nil, nil, st, func(int) string { return "" }, time.UTC)
	RegisterRoutes(app, svc)
	return app
}

// TestDailyQueryValidation verifies that the daily endpoint enforces the
// zip and date query parameter formats.
func TestDailyQueryValidation(t *testing.T) {
	app := newTestApp(&stubStore{})

	// Missing zip parameter should return 400.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/daily?date=2026-08-25", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Malformed date should also return 400.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/weather/daily?zip=64093&date=yesterday", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestDailyNotFound(t *testing.T) {
	st := &stubStore{err: fmt.Errorf("%w: 64093:2026-08-25", weather.ErrNotFound)}
	app := newTestApp(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/daily?zip=64093&date=2026-08-25", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestDailyReturnsExportShape(t *testing.T) {
	st := &stubStore{rec: weather.DailyRecord{
		Date:       "2026-08-25",
		Zip:        "64093",
		Coords:     weather.Coordinates{Lat: 38.7631, Lon: -93.736},
		Condition:  "Overcast",
		TempHighF:  18.8,
		TempLowF:   4.0,
		PrecipMM:   0.0,
		WindMaxMPH: 9.8,
	}}
	app := newTestApp(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/daily?zip=64093&date=2026-08-25", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["condition"] != "Overcast" {
		t.Errorf("condition = %v, want Overcast", body["condition"])
	}
	if body["zip"] != "64093" {
		t.Errorf("zip = %v, want 64093", body["zip"])
	}
	if _, ok := body["coords"].(map[string]interface{}); !ok {
		t.Errorf("coords missing or not an object: %v", body["coords"])
	}
}
