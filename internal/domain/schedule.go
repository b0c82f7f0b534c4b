package domain

// Schedule is a priced, timed route offering available for booking.
type Schedule struct {
	ID            int64  `json:"id"`
	RouteFrom     string `json:"routeFrom"`
	RouteTo       string `json:"routeTo"`
	RouteVia      string `json:"routeVia,omitempty"`
	DepartureTime string `json:"departureTime"`
	Category      string `json:"category"`
	Price         int64  `json:"price"` // harga per penumpang, Rupiah
	Active        bool   `json:"active"`
}
