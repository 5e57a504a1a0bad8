package report

import (
	"strings"
	"testing"

	"github.com/zipcast/zipcast/internal/weather"
)

// TestFormatForecastKnownCode verifies the rendered lines for a typical
// overcast day at ZIP 64093.
func TestFormatForecastKnownCode(t *testing.T) {
	fc := weather.DailyForecast{
		Date:        "2026-08-25",
		TempHighF:   18.8,
		TempLowF:    4.0,
		PrecipMM:    0.0,
		WindMaxMPH:  9.8,
		WeatherCode: 3,
	}
	coords := weather.Coordinates{Lat: 38.7631, Lon: -93.7360}

	out := FormatForecast("64093", coords, fc)

	for _, want := range []string{
		"Weather Forecast for 2026-08-25 (ZIP 64093):",
		"Condition: Overcast",
		"High: 18.8 F",
		"Low: 4.0 F",
		"Precipitation: 0.0 mm",
		"Max Wind Speed: 9.8 mph",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestFormatForecastUnknownCode verifies that a code outside the table
// renders as "Unknown" instead of failing.
func TestFormatForecastUnknownCode(t *testing.T) {
	fc := weather.DailyForecast{Date: "2026-08-25", WeatherCode: 999}

	out := FormatForecast("64093", weather.Coordinates{}, fc)

	if !strings.Contains(out, "Condition: Unknown") {
		t.Errorf("expected unknown condition line, got:\n%s", out)
	}
}

func TestConditionLabel(t *testing.T) {
	cases := map[int]string{
		0:   "Clear sky",
		3:   "Overcast",
		61:  "Rain (slight)",
		95:  "Thunderstorm",
		999: UnknownCondition,
		-1:  UnknownCondition,
	}
	for code, want := range cases {
		if got := ConditionLabel(code); got != want {
			t.Errorf("ConditionLabel(%d) = %q, want %q", code, got, want)
		}
	}
}
