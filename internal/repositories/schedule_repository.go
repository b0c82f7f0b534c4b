package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelia/internal/config"
	intdb "travelia/internal/db"
	"travelia/internal/domain"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const scheduleColumns = `
	id, COALESCE(route_from,''), COALESCE(route_to,''), COALESCE(route_via,''),
	COALESCE(departure_time,''), COALESCE(category,''), COALESCE(price,0), COALESCE(active,1)`

func scanSchedule(row interface{ Scan(...any) error }) (domain.Schedule, error) {
	var s domain.Schedule
	err := row.Scan(
		&s.ID, &s.RouteFrom, &s.RouteTo, &s.RouteVia,
		&s.DepartureTime, &s.Category, &s.Price, &s.Active,
	)
	return s, err
}

func (r ScheduleRepository) List(activeOnly bool) ([]domain.Schedule, error) {
	where := "1=1"
	if activeOnly {
		where = "active=1"
	}
	rows, err := r.db().Query(
		`SELECT ` + scheduleColumns + ` FROM schedules WHERE ` + where +
			` ORDER BY route_from ASC, route_to ASC, departure_time ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Schedule{}
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r ScheduleRepository) GetByID(id int64) (domain.Schedule, error) {
	if id <= 0 {
		return domain.Schedule{}, domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	s, err := scanSchedule(r.db().QueryRow(
		`SELECT `+scheduleColumns+` FROM schedules WHERE id=? LIMIT 1`, id))
	if err == sql.ErrNoRows {
		return domain.Schedule{}, domain.NotFoundError{Resource: "schedule"}
	}
	return s, err
}

func (r ScheduleRepository) Insert(s domain.Schedule) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO schedules (route_from, route_to, route_via, departure_time, category, price, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		strings.TrimSpace(s.RouteFrom), strings.TrimSpace(s.RouteTo), intdb.NullIfEmpty(s.RouteVia),
		s.DepartureTime, s.Category, s.Price, s.Active,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ScheduleRepository) Update(s domain.Schedule) error {
	if s.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`
		UPDATE schedules SET
		  route_from=?, route_to=?, route_via=?, departure_time=?, category=?, price=?, active=?
		WHERE id=?
	`,
		strings.TrimSpace(s.RouteFrom), strings.TrimSpace(s.RouteTo), intdb.NullIfEmpty(s.RouteVia),
		s.DepartureTime, s.Category, s.Price, s.Active, s.ID,
	)
	return err
}

func (r ScheduleRepository) Delete(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`DELETE FROM schedules WHERE id=?`, id)
	return err
}
