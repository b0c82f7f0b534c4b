package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "travelia/internal/config"
	intdb "travelia/internal/db"
	"travelia/internal/domain"
)

// TripRepository persists trip_operations, the financial record of one
// departure. Rows are never deleted automatically.
type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `
	id, COALESCE(trip_date,''),
	COALESCE(route_from,''), COALESCE(route_to,''), COALESCE(route_via,''),
	COALESCE(departure_time,''), COALESCE(passenger_count,0),
	COALESCE(ticket_income,0), COALESCE(other_income,0),
	COALESCE(fuel_cost,0), COALESCE(ferry_cost,0), COALESCE(snack_cost,0), COALESCE(meal_cost,0),
	COALESCE(driver_fee,0), COALESCE(driver_meal_cost,0),
	COALESCE(toll_cost,0), COALESCE(parking_cost,0), COALESCE(other_cost,0),
	COALESCE(notes,''), COALESCE(driver_name,''), COALESCE(plate_number,'')`

func scanTrip(row interface{ Scan(...any) error }) (domain.TripOperation, error) {
	var t domain.TripOperation
	err := row.Scan(
		&t.ID, &t.Date,
		&t.RouteFrom, &t.RouteTo, &t.RouteVia,
		&t.DepartureTime, &t.PassengerCount,
		&t.TicketIncome, &t.OtherIncome,
		&t.FuelCost, &t.FerryCost, &t.SnackCost, &t.MealCost,
		&t.DriverFee, &t.DriverMealCost,
		&t.TollCost, &t.ParkingCost, &t.OtherCost,
		&t.Notes, &t.DriverName, &t.PlateNumber,
	)
	return t, err
}

// List returns trips filtered by year (and optionally month, 1-12).
// year <= 0 lists everything.
func (r TripRepository) List(year, month int) ([]domain.TripOperation, error) {
	where := []string{"1=1"}
	args := []any{}
	if year > 0 && month >= 1 && month <= 12 {
		where = append(where, "trip_date LIKE ?")
		args = append(args, fmt.Sprintf("%04d-%02d-%%", year, month))
	} else if year > 0 {
		where = append(where, "trip_date LIKE ?")
		args = append(args, fmt.Sprintf("%04d-%%", year))
	}

	rows, err := r.db().Query(
		`SELECT `+tripColumns+` FROM trip_operations WHERE `+strings.Join(where, " AND ")+
			` ORDER BY trip_date ASC, departure_time ASC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TripOperation{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id int64) (domain.TripOperation, error) {
	if id <= 0 {
		return domain.TripOperation{}, domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	t, err := scanTrip(r.db().QueryRow(
		`SELECT `+tripColumns+` FROM trip_operations WHERE id=? LIMIT 1`, id))
	if err == sql.ErrNoRows {
		return domain.TripOperation{}, domain.NotFoundError{Resource: "trip operation"}
	}
	return t, err
}

// ExistsForDeparture is the duplicate guard behind manifest promotion:
// one physical departure gets at most one financial record.
func (r TripRepository) ExistsForDeparture(date, routeFrom, routeTo, depTime string) (bool, error) {
	var one int
	err := r.db().QueryRow(`
		SELECT 1 FROM trip_operations
		WHERE trip_date=? AND route_from=? AND route_to=? AND departure_time=?
		LIMIT 1
	`, date, routeFrom, routeTo, depTime).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r TripRepository) Insert(t domain.TripOperation) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trip_operations (
		  trip_date, route_from, route_to, route_via, departure_time, passenger_count,
		  ticket_income, other_income,
		  fuel_cost, ferry_cost, snack_cost, meal_cost,
		  driver_fee, driver_meal_cost, toll_cost, parking_cost, other_cost,
		  notes, driver_name, plate_number
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.Date, t.RouteFrom, t.RouteTo, intdb.NullIfEmpty(t.RouteVia), t.DepartureTime, t.PassengerCount,
		t.TicketIncome, t.OtherIncome,
		t.FuelCost, t.FerryCost, t.SnackCost, t.MealCost,
		t.DriverFee, t.DriverMealCost, t.TollCost, t.ParkingCost, t.OtherCost,
		t.Notes, t.DriverName, t.PlateNumber,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) Update(t domain.TripOperation) error {
	if t.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`
		UPDATE trip_operations SET
		  trip_date=?, route_from=?, route_to=?, route_via=?, departure_time=?, passenger_count=?,
		  ticket_income=?, other_income=?,
		  fuel_cost=?, ferry_cost=?, snack_cost=?, meal_cost=?,
		  driver_fee=?, driver_meal_cost=?, toll_cost=?, parking_cost=?, other_cost=?,
		  notes=?, driver_name=?, plate_number=?
		WHERE id=?
	`,
		t.Date, t.RouteFrom, t.RouteTo, intdb.NullIfEmpty(t.RouteVia), t.DepartureTime, t.PassengerCount,
		t.TicketIncome, t.OtherIncome,
		t.FuelCost, t.FerryCost, t.SnackCost, t.MealCost,
		t.DriverFee, t.DriverMealCost, t.TollCost, t.ParkingCost, t.OtherCost,
		t.Notes, t.DriverName, t.PlateNumber,
		t.ID,
	)
	return err
}

func (r TripRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`DELETE FROM trip_operations WHERE id=?`, id)
	return err
}
