package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

var timeRe = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})\b`)

// NormalizeTimeHM accepts "08:00", "8.00" or "08:00 WIB" and returns "08:00".
func NormalizeTimeHM(s string) (string, error) {
	m := timeRe.FindStringSubmatch(strings.TrimSpace(s))
	if len(m) < 3 {
		return "", fmt.Errorf("format jam tidak valid (contoh: 08:00 atau 08.00)")
	}
	hh := m[1]
	if len(hh) == 1 {
		hh = "0" + hh
	}
	hhmm := hh + ":" + m[2]
	if _, err := time.Parse("15:04", hhmm); err != nil {
		return "", fmt.Errorf("format jam tidak valid")
	}
	return hhmm, nil
}
