package repositories

import (
	"testing"

	"travelia/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingCols = []string{
	"id", "order_no", "customer_name", "customer_phone",
	"route_from", "route_to", "route_via", "trip_date", "trip_time",
	"passenger_count", "total", "payment_status",
	"pickup_address", "dropoff_address", "proof_ref", "proof_file_name",
	"luggage_count", "package_count", "special_request", "created_at",
}

func bookingRow() *sqlmock.Rows {
	return sqlmock.NewRows(bookingCols).
		AddRow(7, "TRV-20260112-AB12", "Budi Santoso", "081234567890",
			"Denpasar", "Mataram", "", "2026-01-12", "08:00",
			2, 300_000, "pending", "Jl. Teuku Umar 10", "", "", "", 1, 0, "", "2026-01-10 09:00:00")
}

func TestBookingGetByOrderNo(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE order_no").
		WithArgs("TRV-20260112-AB12").
		WillReturnRows(bookingRow())

	repo := BookingRepository{DB: db}
	b, err := repo.GetByOrderNo("TRV-20260112-AB12")
	if err != nil {
		t.Fatalf("GetByOrderNo returned error: %v", err)
	}
	if b.ID != 7 || b.CustomerName != "Budi Santoso" || b.Total != 300_000 {
		t.Fatalf("unexpected booking: %+v", b)
	}
}

func TestBookingGetByOrderNoNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE order_no").
		WithArgs("TRV-20260112-ZZ99").
		WillReturnRows(sqlmock.NewRows(bookingCols))

	repo := BookingRepository{DB: db}
	if _, err := repo.GetByOrderNo("TRV-20260112-ZZ99"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingListFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE 1=1 AND trip_date=. AND payment_status=.").
		WithArgs("2026-01-12", "pending").
		WillReturnRows(bookingRow())

	repo := BookingRepository{DB: db}
	out, err := repo.List(BookingFilter{TripDate: "2026-01-12", PaymentStatus: "pending"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingInsertEmptyViaStoredAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("TRV-20260112-AB12", "Budi Santoso", "081234567890",
			"Denpasar", "Mataram", nil,
			"2026-01-12", "08:00", 2, int64(300_000),
			"pending", "Jl. Teuku Umar 10", "",
			1, 0, "").
		WillReturnResult(sqlmock.NewResult(21, 1))

	repo := BookingRepository{DB: db}
	id, err := repo.Insert(domain.Booking{
		OrderNo:        "TRV-20260112-AB12",
		CustomerName:   "Budi Santoso",
		CustomerPhone:  "081234567890",
		RouteFrom:      "Denpasar",
		RouteTo:        "Mataram",
		TripDate:       "2026-01-12",
		TripTime:       "08:00",
		PassengerCount: 2,
		Total:          300_000,
		PaymentStatus:  "pending",
		PickupAddress:  "Jl. Teuku Umar 10",
		LuggageCount:   1,
	})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id != 21 {
		t.Fatalf("id = %d, want 21", id)
	}
}

func TestBookingUpdateStatusRejectsBadID(t *testing.T) {
	repo := BookingRepository{}
	if err := repo.UpdateStatus(0, "paid"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
