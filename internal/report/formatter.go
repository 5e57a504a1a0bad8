package report

import (
	"fmt"
	"strings"

	"github.com/zipcast/zipcast/internal/weather"
)

// conditionLabels is the fixed WMO weather code mapping used everywhere a
// code needs a human label. Codes not listed here render as "Unknown".
var conditionLabels = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Drizzle (light)",
	53: "Drizzle (moderate)",
	55: "Drizzle (dense)",
	61: "Rain (slight)",
	63: "Rain (moderate)",
	65: "Rain (heavy)",
	71: "Snow (slight)",
	73: "Snow (moderate)",
	75: "Snow (heavy)",
	80: "Rain showers (slight)",
	81: "Rain showers (moderate)",
	82: "Rain showers (violent)",
	95: "Thunderstorm",
}

// UnknownCondition is the label used for weather codes outside the table.
const UnknownCondition = "Unknown"

// ConditionLabel maps a numeric WMO weather code to its label.
func ConditionLabel(code int) string {
	if label, ok := conditionLabels[code]; ok {
		return label
	}
	return UnknownCondition
}

// Format renders a daily record as human-readable text. Pure function, no
// side effects.
func Format(rec weather.DailyRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weather Forecast for %s (ZIP %s):\n", rec.Date, rec.Zip)
	fmt.Fprintf(&b, "Coordinates: %.4f, %.4f\n", rec.Coords.Lat, rec.Coords.Lon)
	fmt.Fprintf(&b, "Condition: %s\n", rec.Condition)
	fmt.Fprintf(&b, "High: %.1f F\n", rec.TempHighF)
	fmt.Fprintf(&b, "Low: %.1f F\n", rec.TempLowF)
	fmt.Fprintf(&b, "Precipitation: %.1f mm\n", rec.PrecipMM)
	fmt.Fprintf(&b, "Max Wind Speed: %.1f mph\n", rec.WindMaxMPH)

	return b.String()
}

// FormatForecast renders a raw provider forecast, mapping its weather code
// through the condition table first.
func FormatForecast(zip string, coords weather.Coordinates, fc weather.DailyForecast) string {
	return Format(weather.DailyRecord{
		Date:       fc.Date,
		Zip:        zip,
		Coords:     coords,
		Condition:  ConditionLabel(fc.WeatherCode),
		TempHighF:  fc.TempHighF,
		TempLowF:   fc.TempLowF,
		PrecipMM:   fc.PrecipMM,
		WindMaxMPH: fc.WindMaxMPH,
	})
}
