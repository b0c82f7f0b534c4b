package domain

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"pending":              StatusPending,
		"  PAID ":              StatusPaid,
		"lunas":                StatusPaid,
		"batal":                StatusCancelled,
		"waiting_verification": StatusWaitingVerification,
		"waiting":              StatusWaitingVerification,
		"ngawur":               "",
		"":                     "",
	}
	for in, want := range cases {
		if got := NormalizeStatus(in); got != want {
			t.Fatalf("NormalizeStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{StatusPending, StatusWaitingVerification},
		{StatusPending, StatusCancelled},
		{StatusWaitingVerification, StatusPaid},
		{StatusWaitingVerification, StatusPending},
		{StatusCancelled, StatusPending},
	}
	for _, c := range allowed {
		if !CanTransition(c[0], c[1]) {
			t.Fatalf("%s -> %s should be allowed", c[0], c[1])
		}
	}

	denied := [][2]string{
		{StatusPending, StatusPaid},
		{StatusPaid, StatusPending},
		{StatusPaid, StatusCancelled},
		{StatusCancelled, StatusPaid},
		{StatusWaitingVerification, StatusCancelled},
		{"unknown", StatusPending},
	}
	for _, c := range denied {
		if CanTransition(c[0], c[1]) {
			t.Fatalf("%s -> %s should be denied", c[0], c[1])
		}
	}
}
