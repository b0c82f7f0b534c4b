package utils

import "testing"

func TestNormalizeTimeHM(t *testing.T) {
	cases := map[string]string{
		"08:00":     "08:00",
		"8.00":      "08:00",
		"08.30":     "08:30",
		"08:00 WIB": "08:00",
		" 19:45 ":   "19:45",
	}
	for in, want := range cases {
		got, err := NormalizeTimeHM(in)
		if err != nil {
			t.Fatalf("NormalizeTimeHM(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("NormalizeTimeHM(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"", "pagi", "25:00", "08:99"} {
		if _, err := NormalizeTimeHM(in); err == nil {
			t.Fatalf("NormalizeTimeHM(%q) should fail", in)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-12")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if FormatDate(d) != "2026-01-12" {
		t.Fatalf("round trip mismatch: %s", FormatDate(d))
	}

	for _, in := range []string{"", "12-01-2026", "2026/01/12", "2026-13-01"} {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("ParseDate(%q) should fail", in)
		}
	}
}
