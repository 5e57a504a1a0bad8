package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/zipcast/zipcast/internal/weather"
)

// NominatimGeocoder implements the weather.Geocoder interface against the
// OpenStreetMap Nominatim search API. Nominatim requires an identifying
// User-Agent on every request.
type NominatimGeocoder struct {
	baseURL   string
	country   string
	userAgent string
	client    *http.Client
	circuit   *gobreaker.CircuitBreaker
}

func NewNominatimGeocoder(client *http.Client, country, userAgent string) *NominatimGeocoder {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nominatim",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &NominatimGeocoder{
		baseURL:   "https://nominatim.openstreetmap.org/search",
		country:   country,
		userAgent: userAgent,
		client:    client,
		circuit:   cb,
	}
}

// Geocode resolves a postal code to coordinates. An empty result set means
// the postal code is unknown to Nominatim and maps to weather.ErrZipNotFound.
func (g *NominatimGeocoder) Geocode(ctx context.Context, zip string) (weather.Coordinates, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("postalcode", zip)
		values.Set("country", g.country)
		values.Set("format", "json")

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", g.userAgent)
		return req, nil
	}

	resp, err := doRequest(ctx, g.client, g.circuit, buildRequest)
	if err != nil {
		return weather.Coordinates{}, err
	}
	defer resp.Body.Close()

	// Nominatim returns lat/lon as strings.
	var payload []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Coordinates{}, fmt.Errorf("decode nominatim response: %w", err)
	}

	if len(payload) == 0 {
		return weather.Coordinates{}, fmt.Errorf("%w: %s", weather.ErrZipNotFound, zip)
	}

	lat, err := strconv.ParseFloat(payload[0].Lat, 64)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("parse latitude %q: %w", payload[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(payload[0].Lon, 64)
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("parse longitude %q: %w", payload[0].Lon, err)
	}

	return weather.Coordinates{Lat: lat, Lon: lon}, nil
}
