package common

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for local calendar dates.
const DateLayout = "2006-01-02"

// ParseDate validates a YYYY-MM-DD date string and returns it normalized.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q; use YYYY-MM-DD", s)
	}
	return t.Format(DateLayout), nil
}

// FormatDate renders a time as a local calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
