package services

import (
	"errors"
	"testing"

	"travelia/internal/domain"
)

func TestPricePerSeatFirstActiveMatch(t *testing.T) {
	svc := PricingService{Schedules: func() ([]domain.Schedule, error) {
		return []domain.Schedule{
			{RouteFrom: "Denpasar", RouteTo: "Mataram", Price: 175_000},
			{RouteFrom: "Denpasar", RouteTo: "Mataram", Price: 200_000},
			{RouteFrom: "Mataram", RouteTo: "Denpasar", Price: 180_000},
		}, nil
	}}

	if got := svc.PricePerSeat("Denpasar", "Mataram"); got != 175_000 {
		t.Fatalf("PricePerSeat = %d, want first match 175000", got)
	}
}

func TestPricePerSeatCaseSensitive(t *testing.T) {
	svc := PricingService{Schedules: func() ([]domain.Schedule, error) {
		return []domain.Schedule{
			{RouteFrom: "Denpasar", RouteTo: "Mataram", Price: 175_000},
		}, nil
	}}

	if got := svc.PricePerSeat("denpasar", "mataram"); got != DefaultSeatPrice {
		t.Fatalf("lowercase route should miss and fall back, got %d", got)
	}
}

func TestPricePerSeatFallbacks(t *testing.T) {
	noMatch := PricingService{Schedules: func() ([]domain.Schedule, error) {
		return []domain.Schedule{}, nil
	}}
	if got := noMatch.PricePerSeat("Denpasar", "Sumbawa"); got != DefaultSeatPrice {
		t.Fatalf("no match should fall back to %d, got %d", DefaultSeatPrice, got)
	}

	failing := PricingService{Schedules: func() ([]domain.Schedule, error) {
		return nil, errors.New("db down")
	}}
	if got := failing.PricePerSeat("Denpasar", "Mataram"); got != DefaultSeatPrice {
		t.Fatalf("lookup failure should fall back, got %d", got)
	}

	custom := PricingService{
		Fallback:  120_000,
		Schedules: func() ([]domain.Schedule, error) { return nil, nil },
	}
	if got := custom.PricePerSeat("A", "B"); got != 120_000 {
		t.Fatalf("custom fallback ignored, got %d", got)
	}
}

func TestQuoteMultipliesByPassengerCount(t *testing.T) {
	svc := PricingService{Schedules: func() ([]domain.Schedule, error) {
		return []domain.Schedule{
			{RouteFrom: "Denpasar", RouteTo: "Mataram", Price: 150_000},
		}, nil
	}}

	perSeat, total := svc.Quote("Denpasar", "Mataram", 4)
	if perSeat != 150_000 || total != 600_000 {
		t.Fatalf("Quote = (%d, %d), want (150000, 600000)", perSeat, total)
	}

	_, total = svc.Quote("Denpasar", "Mataram", -3)
	if total != 0 {
		t.Fatalf("negative passenger count should quote 0, got %d", total)
	}
}
