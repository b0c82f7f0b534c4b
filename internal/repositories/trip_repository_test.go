package repositories

import (
	"testing"

	"travelia/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

var tripCols = []string{
	"id", "trip_date", "route_from", "route_to", "route_via",
	"departure_time", "passenger_count", "ticket_income", "other_income",
	"fuel_cost", "ferry_cost", "snack_cost", "meal_cost",
	"driver_fee", "driver_meal_cost", "toll_cost", "parking_cost", "other_cost",
	"notes", "driver_name", "plate_number",
}

func tripRow() *sqlmock.Rows {
	return sqlmock.NewRows(tripCols).
		AddRow(4, "2026-01-12", "Denpasar", "Mataram", "",
			"08:00", 6, 900_000, 0,
			300_000, 250_000, 0, 0,
			135_000, 0, 0, 0, 0,
			"", "Pak Ketut", "DK 1234 AB")
}

func TestTripListByYearMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM trip_operations WHERE 1=1 AND trip_date LIKE").
		WithArgs("2026-01-%").
		WillReturnRows(tripRow())

	repo := TripRepository{DB: db}
	out, err := repo.List(2026, 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(out))
	}
	if out[0].TotalIncome() != 900_000 || out[0].TotalExpense() != 685_000 {
		t.Fatalf("derived totals wrong: income=%d expense=%d", out[0].TotalIncome(), out[0].TotalExpense())
	}
}

func TestTripListYearOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM trip_operations WHERE 1=1 AND trip_date LIKE").
		WithArgs("2026-%").
		WillReturnRows(tripRow())

	repo := TripRepository{DB: db}
	if _, err := repo.List(2026, 0); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM trip_operations WHERE id=").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(tripCols))

	repo := TripRepository{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTripExistsForDeparture(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM trip_operations").
		WithArgs("2026-01-12", "Denpasar", "Mataram", "08:00").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM trip_operations").
		WithArgs("2026-01-13", "Denpasar", "Mataram", "08:00").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	repo := TripRepository{DB: db}

	exists, err := repo.ExistsForDeparture("2026-01-12", "Denpasar", "Mataram", "08:00")
	if err != nil || !exists {
		t.Fatalf("expected exists=true, got %v err=%v", exists, err)
	}

	exists, err = repo.ExistsForDeparture("2026-01-13", "Denpasar", "Mataram", "08:00")
	if err != nil || exists {
		t.Fatalf("expected exists=false, got %v err=%v", exists, err)
	}
}

func TestTripDeleteRejectsBadID(t *testing.T) {
	repo := TripRepository{}
	if err := repo.Delete(-1); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
