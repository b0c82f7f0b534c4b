package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelia/internal/config"
	intdb "travelia/internal/db"
	"travelia/internal/domain"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	id, COALESCE(order_no,''),
	COALESCE(customer_name,''), COALESCE(customer_phone,''),
	COALESCE(route_from,''), COALESCE(route_to,''), COALESCE(route_via,''),
	COALESCE(trip_date,''), COALESCE(trip_time,''),
	COALESCE(passenger_count,0), COALESCE(total,0),
	COALESCE(payment_status,'pending'),
	COALESCE(pickup_address,''), COALESCE(dropoff_address,''),
	COALESCE(proof_ref,''), COALESCE(proof_file_name,''),
	COALESCE(luggage_count,0), COALESCE(package_count,0), COALESCE(special_request,''),
	COALESCE(created_at,'')`

func scanBooking(row interface{ Scan(...any) error }) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.OrderNo,
		&b.CustomerName, &b.CustomerPhone,
		&b.RouteFrom, &b.RouteTo, &b.RouteVia,
		&b.TripDate, &b.TripTime,
		&b.PassengerCount, &b.Total,
		&b.PaymentStatus,
		&b.PickupAddress, &b.DropoffAddress,
		&b.ProofRef, &b.ProofFileName,
		&b.LuggageCount, &b.PackageCount, &b.SpecialRequest,
		&b.CreatedAt,
	)
	return b, err
}

func (r BookingRepository) GetByID(id int64) (domain.Booking, error) {
	if id <= 0 {
		return domain.Booking{}, domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	b, err := scanBooking(r.db().QueryRow(
		`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id))
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

func (r BookingRepository) GetByOrderNo(orderNo string) (domain.Booking, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return domain.Booking{}, domain.ValidationError{Field: "orderNo", Msg: "wajib diisi"}
	}
	b, err := scanBooking(r.db().QueryRow(
		`SELECT `+bookingColumns+` FROM bookings WHERE order_no=? LIMIT 1`, orderNo))
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

// BookingFilter narrows admin listings. Empty fields mean "no filter".
type BookingFilter struct {
	TripDate      string
	PaymentStatus string
	RouteFrom     string
	RouteTo       string
}

func (r BookingRepository) List(f BookingFilter) ([]domain.Booking, error) {
	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(f.TripDate); s != "" {
		where = append(where, "trip_date=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.PaymentStatus); s != "" {
		where = append(where, "payment_status=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.RouteFrom); s != "" {
		where = append(where, "route_from=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.RouteTo); s != "" {
		where = append(where, "route_to=?")
		args = append(args, s)
	}

	rows, err := r.db().Query(
		`SELECT `+bookingColumns+` FROM bookings WHERE `+strings.Join(where, " AND ")+
			` ORDER BY trip_date DESC, trip_time ASC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) Insert(b domain.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (
		  order_no, customer_name, customer_phone,
		  route_from, route_to, route_via,
		  trip_date, trip_time, passenger_count, total,
		  payment_status, pickup_address, dropoff_address,
		  luggage_count, package_count, special_request,
		  created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		b.OrderNo, b.CustomerName, b.CustomerPhone,
		b.RouteFrom, b.RouteTo, intdb.NullIfEmpty(b.RouteVia),
		b.TripDate, b.TripTime, b.PassengerCount, b.Total,
		b.PaymentStatus, b.PickupAddress, b.DropoffAddress,
		b.LuggageCount, b.PackageCount, b.SpecialRequest,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites the admin-editable fields. Last write wins; there is no
// conflict detection between concurrent admin sessions.
func (r BookingRepository) Update(b domain.Booking) error {
	if b.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`
		UPDATE bookings SET
		  customer_name=?, customer_phone=?,
		  route_from=?, route_to=?, route_via=?,
		  trip_date=?, trip_time=?, passenger_count=?, total=?,
		  pickup_address=?, dropoff_address=?,
		  luggage_count=?, package_count=?, special_request=?
		WHERE id=?
	`,
		b.CustomerName, b.CustomerPhone,
		b.RouteFrom, b.RouteTo, intdb.NullIfEmpty(b.RouteVia),
		b.TripDate, b.TripTime, b.PassengerCount, b.Total,
		b.PickupAddress, b.DropoffAddress,
		b.LuggageCount, b.PackageCount, b.SpecialRequest,
		b.ID,
	)
	return err
}

func (r BookingRepository) UpdateStatus(id int64, status string) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`UPDATE bookings SET payment_status=? WHERE id=?`, status, id)
	return err
}

// AttachProof stores the uploaded payment-proof reference.
func (r BookingRepository) AttachProof(id int64, proofRef, fileName string) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(
		`UPDATE bookings SET proof_ref=?, proof_file_name=? WHERE id=?`,
		proofRef, fileName, id,
	)
	return err
}
