package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := map[int64]string{
		0:          "Rp0",
		950:        "Rp950",
		150000:     "Rp150.000",
		1250000:    "Rp1.250.000",
		-75000:     "-Rp75.000",
		1000000000: "Rp1.000.000.000",
	}
	for in, want := range cases {
		if got := FormatRupiah(in); got != want {
			t.Fatalf("FormatRupiah(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseRupiahToInt(t *testing.T) {
	cases := map[string]int64{
		"Rp 1.000":   1000,
		"rp150.000":  150000,
		"1,000":      1000,
		"  250000  ": 250000,
	}
	for in, want := range cases {
		got, err := ParseRupiahToInt(in)
		if err != nil {
			t.Fatalf("ParseRupiahToInt(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRupiahToInt(%q) = %d, want %d", in, got, want)
		}
	}

	if _, err := ParseRupiahToInt("Rp"); err == nil {
		t.Fatal("expected error for empty amount")
	}
}
