package domain

import "strings"

// Payment status lifecycle of a booking. paid and cancelled are terminal
// for the customer; admin can revert cancelled back to pending.
const (
	StatusPending             = "pending"
	StatusWaitingVerification = "waiting_verification"
	StatusPaid                = "paid"
	StatusCancelled           = "cancelled"
)

// Booking is one customer reservation.
type Booking struct {
	ID      int64  `json:"id"`
	OrderNo string `json:"orderNo"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	RouteFrom string `json:"routeFrom"`
	RouteTo   string `json:"routeTo"`
	RouteVia  string `json:"routeVia,omitempty"`

	TripDate string `json:"tripDate"` // YYYY-MM-DD
	TripTime string `json:"tripTime"` // HH:MM

	PassengerCount int   `json:"passengerCount"`
	Total          int64 `json:"total"` // harga per penumpang x jumlah penumpang

	PaymentStatus string `json:"paymentStatus"`

	// Alamat bebas, boleh berisi koordinat GPS / link peta.
	PickupAddress  string `json:"pickupAddress"`
	DropoffAddress string `json:"dropoffAddress"`

	ProofRef      string `json:"proofRef,omitempty"`
	ProofFileName string `json:"proofFileName,omitempty"`

	LuggageCount   int    `json:"luggageCount"`
	PackageCount   int    `json:"packageCount"`
	SpecialRequest string `json:"specialRequest,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
}

// NormalizeStatus maps free-form status input onto the known lifecycle
// values; unknown input yields "".
func NormalizeStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case StatusPending, "menunggu":
		return StatusPending
	case StatusWaitingVerification, "waiting", "menunggu verifikasi":
		return StatusWaitingVerification
	case StatusPaid, "lunas", "sukses":
		return StatusPaid
	case StatusCancelled, "batal", "dibatalkan":
		return StatusCancelled
	default:
		return ""
	}
}

// CanTransition reports whether a booking may move between two statuses.
// pending -> waiting_verification (customer uploads proof)
// waiting_verification -> paid (admin verifies) | pending (admin rejects)
// pending -> cancelled (admin) ; cancelled -> pending (admin revert)
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusWaitingVerification || to == StatusCancelled
	case StatusWaitingVerification:
		return to == StatusPaid || to == StatusPending
	case StatusCancelled:
		return to == StatusPending
	default:
		return false
	}
}
