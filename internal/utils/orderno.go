package utils

import (
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// Order numbers are customer-facing booking references.
// Current form : TRV-YYYYMMDD-XXXX (4 uppercase alphanumeric chars)
// Legacy form  : TRV-<13 digit unix millis> (older bookings, still accepted)
var orderNoRe = regexp.MustCompile(`^TRV-(\d{8}-[A-Z0-9]{4}|\d{13})$`)

const orderSuffixChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewOrderNo builds an order number for the given trip date.
func NewOrderNo(now time.Time) string {
	var b strings.Builder
	b.WriteString("TRV-")
	b.WriteString(now.Format("20060102"))
	b.WriteByte('-')
	for i := 0; i < 4; i++ {
		b.WriteByte(orderSuffixChars[rand.Intn(len(orderSuffixChars))])
	}
	return b.String()
}

// ValidOrderNo accepts both the dated and the legacy timestamp form.
func ValidOrderNo(s string) bool {
	return orderNoRe.MatchString(strings.TrimSpace(s))
}
