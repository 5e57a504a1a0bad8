package weather

import (
	"time"
)

// Coordinates is a geocoded latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DailyForecast holds one day's aggregated weather metrics as returned by the
// forecast provider, before a condition label is attached.
type DailyForecast struct {
	Date        string // local calendar date, YYYY-MM-DD
	TempHighF   float64
	TempLowF    float64
	PrecipMM    float64
	WindMaxMPH  float64
	WeatherCode int
}

// DailyRecord is the normalized one-day forecast for one ZIP code. It is the
// unit of persistence: at most one record exists per (Date, Zip).
type DailyRecord struct {
	Date       string      `json:"date"` // local calendar date, YYYY-MM-DD
	Zip        string      `json:"zip"`
	Coords     Coordinates `json:"coords"`
	Condition  string      `json:"condition"`
	TempHighF  float64     `json:"highF"`
	TempLowF   float64     `json:"lowF"`
	PrecipMM   float64     `json:"precipMM"`
	WindMaxMPH float64     `json:"windMaxMPH"`

	// CreatedAt is set by the store on first insert and never updated.
	CreatedAt time.Time `json:"-"`
}

// Key returns the canonical natural key of the record for logging.
func (r DailyRecord) Key() string {
	return r.Zip + ":" + r.Date
}
