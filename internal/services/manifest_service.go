package services

import (
	"math"
	"sort"
	"strings"

	"travelia/internal/domain"
	"travelia/internal/repositories"
	"travelia/internal/utils"
)

// DefaultDriverFeePct is the driver commission applied when a manifest
// group is promoted without an explicit override.
const DefaultDriverFeePct = 15.0

// GroupKey identifies one physical departure. The via-waypoint is part
// of the key: two otherwise-identical routes with different waypoints
// are never merged.
type GroupKey struct {
	TripDate  string `json:"tripDate"`
	RouteFrom string `json:"routeFrom"`
	RouteTo   string `json:"routeTo"`
	RouteVia  string `json:"routeVia"`
	TripTime  string `json:"tripTime"`
}

// ManifestGroup is the passenger roster of one departure, derived from
// bookings sharing the same key.
type ManifestGroup struct {
	Key        GroupKey         `json:"key"`
	Bookings   []domain.Booking `json:"bookings"`
	Passengers int              `json:"passengers"`
}

func keyOf(b domain.Booking) GroupKey {
	return GroupKey{
		TripDate:  strings.TrimSpace(b.TripDate),
		RouteFrom: strings.TrimSpace(b.RouteFrom),
		RouteTo:   strings.TrimSpace(b.RouteTo),
		RouteVia:  strings.TrimSpace(b.RouteVia),
		TripTime:  strings.TrimSpace(b.TripTime),
	}
}

// GroupBookings partitions bookings into manifest groups. Pure function:
// output order is deterministic (date, time, route), cancelled bookings
// are left out of the roster.
func GroupBookings(bookings []domain.Booking) []ManifestGroup {
	byKey := map[GroupKey]*ManifestGroup{}
	order := []GroupKey{}

	for _, b := range bookings {
		if b.PaymentStatus == domain.StatusCancelled {
			continue
		}
		k := keyOf(b)
		g, ok := byKey[k]
		if !ok {
			g = &ManifestGroup{Key: k}
			byKey[k] = g
			order = append(order, k)
		}
		g.Bookings = append(g.Bookings, b)
		g.Passengers += b.PassengerCount
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.TripDate != b.TripDate {
			return a.TripDate < b.TripDate
		}
		if a.TripTime != b.TripTime {
			return a.TripTime < b.TripTime
		}
		if a.RouteFrom != b.RouteFrom {
			return a.RouteFrom < b.RouteFrom
		}
		return a.RouteTo < b.RouteTo
	})

	out := make([]ManifestGroup, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}

// TicketIncome sums the totals of paid bookings only. Unpaid passengers
// still ride (and count), but contribute zero income.
func (g ManifestGroup) TicketIncome() int64 {
	var sum int64
	for _, b := range g.Bookings {
		if b.PaymentStatus == domain.StatusPaid {
			sum += b.Total
		}
	}
	return sum
}

// ManifestService groups bookings per departure and promotes a group
// into exactly one TripOperation.
type ManifestService struct {
	BookingRepo repositories.BookingRepository
	TripRepo    repositories.TripRepository
	RequestID   string
}

// ListGroups returns the manifest groups for one travel date.
func (s ManifestService) ListGroups(tripDate string) ([]ManifestGroup, error) {
	if strings.TrimSpace(tripDate) == "" {
		return nil, domain.ValidationError{Field: "tripDate", Msg: "wajib diisi"}
	}
	bookings, err := s.BookingRepo.List(repositories.BookingFilter{TripDate: tripDate})
	if err != nil {
		return nil, err
	}
	return GroupBookings(bookings), nil
}

// Promote turns one manifest group into a TripOperation. Re-processing
// the same departure is rejected: at most one financial record may exist
// per (date, route-from, route-to, pickup-time).
func (s ManifestService) Promote(key GroupKey, driverFeePct *float64) (int64, error) {
	groups, err := s.ListGroups(key.TripDate)
	if err != nil {
		return 0, err
	}

	var group *ManifestGroup
	for i := range groups {
		if groups[i].Key == key {
			group = &groups[i]
			break
		}
	}
	if group == nil || len(group.Bookings) == 0 {
		return 0, domain.NotFoundError{Resource: "manifest group"}
	}

	exists, err := s.TripRepo.ExistsForDeparture(key.TripDate, key.RouteFrom, key.RouteTo, key.TripTime)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, domain.ConflictError{Resource: "trip operation", Msg: "manifest sudah diproses"}
	}

	income := group.TicketIncome()

	pct := DefaultDriverFeePct
	if driverFeePct != nil {
		pct = *driverFeePct
	}
	var driverFee int64
	if pct > 0 {
		driverFee = int64(math.Round(float64(income) * pct / 100.0))
	}

	id, err := s.TripRepo.Insert(domain.TripOperation{
		Date:           key.TripDate,
		RouteFrom:      key.RouteFrom,
		RouteTo:        key.RouteTo,
		RouteVia:       key.RouteVia,
		DepartureTime:  key.TripTime,
		PassengerCount: group.Passengers,
		TicketIncome:   income,
		DriverFee:      driverFee,
	})
	if err != nil {
		return 0, err
	}

	utils.LogEvent(s.RequestID, "manifest", "promote",
		"date="+key.TripDate+" route="+key.RouteFrom+"-"+key.RouteTo+" time="+key.TripTime)
	return id, nil
}
