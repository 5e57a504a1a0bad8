package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zipcast/zipcast/internal/weather"
)

const openMeteoPayload = `{
	"daily": {
		"time": ["2026-08-25"],
		"temperature_2m_max": [18.8],
		"temperature_2m_min": [4.0],
		"precipitation_sum": [0.0],
		"windspeed_10m_max": [9.8],
		"weathercode": [3]
	}
}`

func TestOpenMeteoFetchDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("forecast_days"); got != "1" {
			t.Errorf("forecast_days = %q, want 1", got)
		}
		if got := q.Get("timezone"); got != "America/Chicago" {
			t.Errorf("timezone = %q, want America/Chicago", got)
		}
		if got := q.Get("temperature_unit"); got != "fahrenheit" {
			t.Errorf("temperature_unit = %q, want fahrenheit", got)
		}
		if got := q.Get("windspeed_unit"); got != "mph" {
			t.Errorf("windspeed_unit = %q, want mph", got)
		}
		if got := q.Get("daily"); got != "temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max,weathercode" {
			t.Errorf("unexpected daily fields: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(openMeteoPayload))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), "America/Chicago")
	p.baseURL = srv.URL

	fc, err := p.FetchDaily(context.Background(), weather.Coordinates{Lat: 38.7631, Lon: -93.736})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := weather.DailyForecast{
		Date:        "2026-08-25",
		TempHighF:   18.8,
		TempLowF:    4.0,
		PrecipMM:    0.0,
		WindMaxMPH:  9.8,
		WeatherCode: 3,
	}
	if fc != want {
		t.Errorf("forecast = %+v, want %+v", fc, want)
	}
}

func TestOpenMeteoFetchDailyMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily":{"time":[]}}`))
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), "America/Chicago")
	p.baseURL = srv.URL

	if _, err := p.FetchDaily(context.Background(), weather.Coordinates{}); err == nil {
		t.Fatal("expected error for empty daily arrays")
	}
}

func TestOpenMeteoFetchDailyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewOpenMeteoProvider(srv.Client(), "America/Chicago")
	p.baseURL = srv.URL

	_, err := p.FetchDaily(context.Background(), weather.Coordinates{})
	if !errors.Is(err, weather.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
