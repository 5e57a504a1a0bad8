package export

import (
	"encoding/json"

	"github.com/zipcast/zipcast/internal/weather"
)

// Record is the fixed JSON export shape for a stored daily weather record.
// Field names are part of the external contract and must stay stable.
type Record struct {
	Date       string              `json:"date"`
	Zip        string              `json:"zip"`
	Coords     weather.Coordinates `json:"coords"`
	Condition  string              `json:"condition"`
	HighF      float64             `json:"highF"`
	LowF       float64             `json:"lowF"`
	PrecipMM   float64             `json:"precipMM"`
	WindMaxMPH float64             `json:"windMaxMPH"`
}

// FromDailyRecord converts a stored record into the export shape.
func FromDailyRecord(rec weather.DailyRecord) Record {
	return Record{
		Date:       rec.Date,
		Zip:        rec.Zip,
		Coords:     rec.Coords,
		Condition:  rec.Condition,
		HighF:      rec.TempHighF,
		LowF:       rec.TempLowF,
		PrecipMM:   rec.PrecipMM,
		WindMaxMPH: rec.WindMaxMPH,
	}
}

// Marshal renders a stored record as indented JSON.
func Marshal(rec weather.DailyRecord) ([]byte, error) {
	return json.MarshalIndent(FromDailyRecord(rec), "", "  ")
}
