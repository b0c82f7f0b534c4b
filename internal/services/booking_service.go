package services

import (
	"strings"
	"time"

	"travelia/internal/domain"
	"travelia/internal/repositories"
	"travelia/internal/utils"

	"github.com/google/uuid"
)

// BookingService handles the customer booking flow and the admin-side
// payment verification lifecycle.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	Pricing     PricingService
	RequestID   string

	// Now overrides the clock in tests.
	Now func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type CreateBookingInput struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	RouteFrom string `json:"routeFrom"`
	RouteTo   string `json:"routeTo"`
	RouteVia  string `json:"routeVia"`

	TripDate string `json:"tripDate"`
	TripTime string `json:"tripTime"`

	PassengerCount int `json:"passengerCount"`

	PickupAddress  string `json:"pickupAddress"`
	DropoffAddress string `json:"dropoffAddress"`

	LuggageCount   int    `json:"luggageCount"`
	PackageCount   int    `json:"packageCount"`
	SpecialRequest string `json:"specialRequest"`

	// PaymentStatus is honored for admin offline entry only; customer
	// bookings always start as pending.
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

// Create validates customer input, prices the route and inserts the
// booking. Validation happens before any write.
func (s BookingService) Create(in CreateBookingInput, fromAdmin bool) (domain.Booking, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.RouteFrom = strings.TrimSpace(in.RouteFrom)
	in.RouteTo = strings.TrimSpace(in.RouteTo)
	in.RouteVia = strings.TrimSpace(in.RouteVia)

	if in.CustomerName == "" {
		return domain.Booking{}, domain.ValidationError{Field: "customerName", Msg: "wajib diisi"}
	}
	if !utils.ValidPhone(in.CustomerPhone) {
		return domain.Booking{}, domain.ValidationError{Field: "customerPhone", Msg: "nomor HP tidak valid"}
	}
	if in.RouteFrom == "" || in.RouteTo == "" {
		return domain.Booking{}, domain.ValidationError{Field: "route", Msg: "asal dan tujuan wajib diisi"}
	}
	if _, err := utils.ParseDate(in.TripDate); err != nil {
		return domain.Booking{}, domain.ValidationError{Field: "tripDate", Msg: "format tanggal tidak valid (YYYY-MM-DD)"}
	}
	tripTime, err := utils.NormalizeTimeHM(in.TripTime)
	if err != nil {
		return domain.Booking{}, domain.ValidationError{Field: "tripTime", Msg: err.Error()}
	}
	if in.PassengerCount <= 0 {
		return domain.Booking{}, domain.ValidationError{Field: "passengerCount", Msg: "minimal 1 penumpang"}
	}

	status := domain.StatusPending
	if fromAdmin && in.PaymentStatus != "" {
		if st := domain.NormalizeStatus(in.PaymentStatus); st != "" {
			status = st
		} else {
			return domain.Booking{}, domain.ValidationError{Field: "paymentStatus", Msg: "status tidak dikenal"}
		}
	}

	_, total := s.Pricing.Quote(in.RouteFrom, in.RouteTo, in.PassengerCount)

	b := domain.Booking{
		OrderNo:        utils.NewOrderNo(s.now()),
		CustomerName:   in.CustomerName,
		CustomerPhone:  utils.NormalizePhone(in.CustomerPhone),
		RouteFrom:      in.RouteFrom,
		RouteTo:        in.RouteTo,
		RouteVia:       in.RouteVia,
		TripDate:       strings.TrimSpace(in.TripDate),
		TripTime:       tripTime,
		PassengerCount: in.PassengerCount,
		Total:          total,
		PaymentStatus:  status,
		PickupAddress:  strings.TrimSpace(in.PickupAddress),
		DropoffAddress: strings.TrimSpace(in.DropoffAddress),
		LuggageCount:   in.LuggageCount,
		PackageCount:   in.PackageCount,
		SpecialRequest: strings.TrimSpace(in.SpecialRequest),
	}

	id, err := s.BookingRepo.Insert(b)
	if err != nil {
		return domain.Booking{}, err
	}
	b.ID = id

	utils.LogEvent(s.RequestID, "booking", "create", "order_no="+b.OrderNo)
	return b, nil
}

// Lookup is the customer-facing order tracking: order number plus phone.
// Phones compare after normalization, so +62 and 0 prefixes match.
func (s BookingService) Lookup(orderNo, phone string) (domain.Booking, error) {
	orderNo = strings.TrimSpace(orderNo)
	if !utils.ValidOrderNo(orderNo) {
		return domain.Booking{}, domain.ValidationError{Field: "orderNo", Msg: "format nomor order tidak valid"}
	}
	if strings.TrimSpace(phone) == "" {
		return domain.Booking{}, domain.ValidationError{Field: "phone", Msg: "wajib diisi"}
	}

	b, err := s.BookingRepo.GetByOrderNo(orderNo)
	if err != nil {
		return domain.Booking{}, err
	}
	if utils.NormalizePhone(b.CustomerPhone) != utils.NormalizePhone(phone) {
		return domain.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}

// SubmitProof attaches a payment-proof reference and moves the booking
// to waiting_verification.
func (s BookingService) SubmitProof(orderNo, phone, fileName string) (domain.Booking, error) {
	b, err := s.Lookup(orderNo, phone)
	if err != nil {
		return domain.Booking{}, err
	}
	if !domain.CanTransition(b.PaymentStatus, domain.StatusWaitingVerification) {
		return domain.Booking{}, domain.ValidationError{
			Field: "paymentStatus",
			Msg:   "bukti pembayaran hanya bisa dikirim saat status pending",
		}
	}

	proofRef := uuid.NewString()
	if err := s.BookingRepo.AttachProof(b.ID, proofRef, strings.TrimSpace(fileName)); err != nil {
		return domain.Booking{}, err
	}
	if err := s.BookingRepo.UpdateStatus(b.ID, domain.StatusWaitingVerification); err != nil {
		return domain.Booking{}, err
	}

	b.ProofRef = proofRef
	b.ProofFileName = strings.TrimSpace(fileName)
	b.PaymentStatus = domain.StatusWaitingVerification

	utils.LogEvent(s.RequestID, "booking", "submit_proof", "order_no="+b.OrderNo)
	return b, nil
}

// SetStatus applies one admin status transition (verify, reject, cancel,
// revert). Illegal transitions are rejected before any write.
func (s BookingService) SetStatus(id int64, target string) (domain.Booking, error) {
	st := domain.NormalizeStatus(target)
	if st == "" {
		return domain.Booking{}, domain.ValidationError{Field: "paymentStatus", Msg: "status tidak dikenal"}
	}

	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return domain.Booking{}, err
	}
	if !domain.CanTransition(b.PaymentStatus, st) {
		return domain.Booking{}, domain.ValidationError{
			Field: "paymentStatus",
			Msg:   "transisi " + b.PaymentStatus + " -> " + st + " tidak diizinkan",
		}
	}

	if err := s.BookingRepo.UpdateStatus(b.ID, st); err != nil {
		return domain.Booking{}, err
	}
	b.PaymentStatus = st

	utils.LogEvent(s.RequestID, "booking", "set_status", "order_no="+b.OrderNo+" status="+st)
	return b, nil
}
