package utils

import (
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^(\+62|62|0)?8\d{7,10}$`)

// NormalizePhone strips everything except digits (and a leading "+"),
// then rewrites the +62/62 country prefix to the local "0" prefix so
// "081234567890" and "+6281234567890" compare equal.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	s := b.String()
	switch {
	case strings.HasPrefix(s, "+62"):
		return "0" + s[3:]
	case strings.HasPrefix(s, "62"):
		return "0" + s[2:]
	default:
		return s
	}
}

// ValidPhone checks Indonesian mobile numbers: an optional +62/62/0 prefix,
// then "8", then 7-10 further digits.
func ValidPhone(raw string) bool {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return phoneRe.MatchString(b.String())
}
