package common

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-08-25"); err != nil {
		t.Errorf("unexpected error for valid date: %v", err)
	}
	for _, bad := range []string{"", "yesterday", "08/25/2026", "2026-13-01"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 8, 25, 23, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2026-08-25" {
		t.Errorf("FormatDate = %q, want 2026-08-25", got)
	}
}
