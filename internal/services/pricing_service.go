package services

import (
	"travelia/internal/domain"
	"travelia/internal/repositories"
)

// DefaultSeatPrice is charged when no schedule covers a route. The
// booking flow must always be able to compute a total, so a missing
// schedule is never an error.
const DefaultSeatPrice = int64(150_000)

// PricingService resolves the per-passenger price of a route from the
// active schedule set.
type PricingService struct {
	ScheduleRepo repositories.ScheduleRepository
	Fallback     int64

	// Schedules overrides the repo lookup in tests.
	Schedules func() ([]domain.Schedule, error)
}

func (s PricingService) fallback() int64 {
	if s.Fallback > 0 {
		return s.Fallback
	}
	return DefaultSeatPrice
}

func (s PricingService) loadSchedules() ([]domain.Schedule, error) {
	if s.Schedules != nil {
		return s.Schedules()
	}
	return s.ScheduleRepo.List(true)
}

// PricePerSeat returns the first active schedule's price for the city
// pair. City names compare case-sensitively, exactly as stored. Routes
// absent from the schedule table get the fallback price.
func (s PricingService) PricePerSeat(routeFrom, routeTo string) int64 {
	schedules, err := s.loadSchedules()
	if err != nil {
		return s.fallback()
	}
	for _, sc := range schedules {
		if sc.RouteFrom == routeFrom && sc.RouteTo == routeTo {
			return sc.Price
		}
	}
	return s.fallback()
}

// Quote computes the per-seat price and booking total for a passenger count.
func (s PricingService) Quote(routeFrom, routeTo string, passengerCount int) (perSeat, total int64) {
	perSeat = s.PricePerSeat(routeFrom, routeTo)
	if passengerCount < 0 {
		passengerCount = 0
	}
	return perSeat, perSeat * int64(passengerCount)
}
