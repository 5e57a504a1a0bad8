package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/zipcast/zipcast/internal/weather"
)

// OpenMeteoProvider implements the weather.ForecastProvider interface for the
// Open-Meteo daily forecast API. Temperatures come back in Fahrenheit and
// wind speed in mph; precipitation stays in millimeters, which Open-Meteo
// does not convert.
type OpenMeteoProvider struct {
	name     string
	baseURL  string
	timezone string
	client   *http.Client
	circuit  *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client, timezone string) *OpenMeteoProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:     "openmeteo",
		baseURL:  "https://api.open-meteo.com/v1/forecast",
		timezone: timezone,
		client:   client,
		circuit:  cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchDaily requests exactly one forecast day (today in the configured
// timezone) and returns its aggregated metrics.
func (p *OpenMeteoProvider) FetchDaily(ctx context.Context, coords weather.Coordinates) (weather.DailyForecast, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%.6f", coords.Lat))
		values.Set("longitude", fmt.Sprintf("%.6f", coords.Lon))
		values.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,windspeed_10m_max,weathercode")
		values.Set("timezone", p.timezone)
		values.Set("forecast_days", "1")
		values.Set("temperature_unit", "fahrenheit")
		values.Set("windspeed_unit", "mph")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return weather.DailyForecast{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Daily struct {
			Time             []string  `json:"time"`
			Temperature2MMax []float64 `json:"temperature_2m_max"`
			Temperature2MMin []float64 `json:"temperature_2m_min"`
			PrecipitationSum []float64 `json:"precipitation_sum"`
			WindSpeed10MMax  []float64 `json:"windspeed_10m_max"`
			WeatherCode      []int     `json:"weathercode"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.DailyForecast{}, fmt.Errorf("decode open-meteo response: %w", err)
	}

	d := payload.Daily
	if len(d.Time) == 0 || len(d.Temperature2MMax) == 0 || len(d.Temperature2MMin) == 0 ||
		len(d.PrecipitationSum) == 0 || len(d.WindSpeed10MMax) == 0 || len(d.WeatherCode) == 0 {
		return weather.DailyForecast{}, fmt.Errorf("open-meteo response is missing daily fields")
	}

	return weather.DailyForecast{
		Date:        d.Time[0],
		TempHighF:   d.Temperature2MMax[0],
		TempLowF:    d.Temperature2MMin[0],
		PrecipMM:    d.PrecipitationSum[0],
		WindMaxMPH:  d.WindSpeed10MMax[0],
		WeatherCode: d.WeatherCode[0],
	}, nil
}
