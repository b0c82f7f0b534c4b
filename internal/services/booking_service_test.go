package services

import (
	"testing"
	"time"

	"travelia/internal/domain"
	"travelia/internal/repositories"
	"travelia/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

func fixedPricing() PricingService {
	return PricingService{Schedules: func() ([]domain.Schedule, error) {
		return []domain.Schedule{
			{RouteFrom: "Denpasar", RouteTo: "Mataram", Price: 150_000},
		}, nil
	}}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		CustomerName:   "Budi Santoso",
		CustomerPhone:  "081234567890",
		RouteFrom:      "Denpasar",
		RouteTo:        "Mataram",
		TripDate:       "2026-01-12",
		TripTime:       "08.00",
		PassengerCount: 2,
		PickupAddress:  "Jl. Teuku Umar 10",
	}
}

func TestCreateBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(11, 1))

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		Pricing:     fixedPricing(),
		Now:         func() time.Time { return time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local) },
	}

	b, err := svc.Create(validInput(), false)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.ID != 11 {
		t.Fatalf("booking id = %d, want 11", b.ID)
	}
	if !utils.ValidOrderNo(b.OrderNo) {
		t.Fatalf("invalid order no generated: %s", b.OrderNo)
	}
	if b.PaymentStatus != domain.StatusPending {
		t.Fatalf("customer booking must start pending, got %s", b.PaymentStatus)
	}
	if b.Total != 300_000 {
		t.Fatalf("total = %d, want 300000", b.Total)
	}
	if b.TripTime != "08:00" {
		t.Fatalf("trip time not normalized: %s", b.TripTime)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := BookingService{Pricing: fixedPricing()}

	cases := []func(*CreateBookingInput){
		func(in *CreateBookingInput) { in.CustomerName = "  " },
		func(in *CreateBookingInput) { in.CustomerPhone = "12345" },
		func(in *CreateBookingInput) { in.RouteFrom = "" },
		func(in *CreateBookingInput) { in.TripDate = "12-01-2026" },
		func(in *CreateBookingInput) { in.TripTime = "pagi" },
		func(in *CreateBookingInput) { in.PassengerCount = 0 },
	}
	for i, mutate := range cases {
		in := validInput()
		mutate(&in)
		if _, err := svc.Create(in, false); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestCreateBookingAdminStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(5, 1))

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		Pricing:     fixedPricing(),
	}

	in := validInput()
	in.PaymentStatus = "lunas"
	b, err := svc.Create(in, true)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if b.PaymentStatus != domain.StatusPaid {
		t.Fatalf("admin status override ignored, got %s", b.PaymentStatus)
	}

	in.PaymentStatus = "ngawur"
	if _, err := svc.Create(in, true); !domain.IsValidation(err) {
		t.Fatalf("unknown status should be rejected, got %v", err)
	}
}

func lookupRow(status string) *sqlmock.Rows {
	return sqlmock.NewRows(bookingTestColumns).
		AddRow(3, "TRV-20260112-AB12", "Budi Santoso", "081234567890",
			"Denpasar", "Mataram", "", "2026-01-12", "08:00",
			2, 300_000, status, "Jl. Teuku Umar 10", "", "", "", 1, 0, "", "2026-01-10 09:00:00")
}

func TestLookupMatchesNormalizedPhone(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE order_no").
		WithArgs("TRV-20260112-AB12").
		WillReturnRows(lookupRow(domain.StatusPending))

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}}

	b, err := svc.Lookup("TRV-20260112-AB12", "+6281234567890")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if b.ID != 3 {
		t.Fatalf("booking id = %d, want 3", b.ID)
	}
}

func TestLookupPhoneMismatchHidesBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE order_no").
		WithArgs("TRV-20260112-AB12").
		WillReturnRows(lookupRow(domain.StatusPending))

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}}

	if _, err := svc.Lookup("TRV-20260112-AB12", "089999999999"); !domain.IsNotFound(err) {
		t.Fatalf("phone mismatch must look like not found, got %v", err)
	}
}

func TestLookupRejectsMalformedOrderNo(t *testing.T) {
	svc := BookingService{}
	if _, err := svc.Lookup("TRV-abc", "081234567890"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitProofMovesToWaitingVerification(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE order_no").
		WillReturnRows(lookupRow(domain.StatusPending))
	mock.ExpectExec("UPDATE bookings SET proof_ref").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET payment_status").
		WithArgs(domain.StatusWaitingVerification, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}}

	b, err := svc.SubmitProof("TRV-20260112-AB12", "081234567890", "bukti.jpg")
	if err != nil {
		t.Fatalf("SubmitProof returned error: %v", err)
	}
	if b.PaymentStatus != domain.StatusWaitingVerification {
		t.Fatalf("status = %s, want waiting_verification", b.PaymentStatus)
	}
	if b.ProofRef == "" || b.ProofFileName != "bukti.jpg" {
		t.Fatalf("proof not attached: ref=%q file=%q", b.ProofRef, b.ProofFileName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitProofRejectedWhenAlreadyPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE order_no").
		WillReturnRows(lookupRow(domain.StatusPaid))

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}}

	if _, err := svc.SubmitProof("TRV-20260112-AB12", "081234567890", "bukti.jpg"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetStatusTransitions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE id=").
		WithArgs(int64(3)).
		WillReturnRows(lookupRow(domain.StatusWaitingVerification))
	mock.ExpectExec("UPDATE bookings SET payment_status").
		WithArgs(domain.StatusPaid, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}}

	b, err := svc.SetStatus(3, "paid")
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if b.PaymentStatus != domain.StatusPaid {
		t.Fatalf("status = %s, want paid", b.PaymentStatus)
	}
}

func TestSetStatusRejectsIllegalTransition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE id=").
		WithArgs(int64(3)).
		WillReturnRows(lookupRow(domain.StatusPending))

	svc := BookingService{BookingRepo: repositories.BookingRepository{DB: db}}

	if _, err := svc.SetStatus(3, "paid"); !domain.IsValidation(err) {
		t.Fatalf("pending -> paid must be rejected, got %v", err)
	}
}
