package repositories

import (
	"database/sql"

	intconfig "travelia/internal/config"
	intdb "travelia/internal/db"
	"travelia/internal/domain"
)

// ContentRepository persists the marketing-site records: banners, promos,
// faqs, testimonials, videos. Public pages read active rows only; admin
// reads everything.
type ContentRepository struct {
	DB *sql.DB
}

func (r ContentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ===== banners =====

func (r ContentRepository) ListBanners(activeOnly bool) ([]domain.Banner, error) {
	where := "1=1"
	if activeOnly {
		where = "active=1"
	}
	order := "id ASC"
	if intdb.HasColumn(r.db(), "banners", "sort_order") {
		order = "sort_order ASC, id ASC"
	}
	rows, err := r.db().Query(`
		SELECT id, COALESCE(title,''), COALESCE(image_url,''), COALESCE(target_url,''),
		       COALESCE(layout_type,'hero'), COALESCE(sort_order,0), COALESCE(active,1)
		FROM banners WHERE ` + where + ` ORDER BY ` + order)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Banner{}
	for rows.Next() {
		var b domain.Banner
		var layout string
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.TargetURL, &layout, &b.SortOrder, &b.Active); err != nil {
			return out, err
		}
		if l, ok := domain.ParseBannerLayout(layout); ok {
			b.LayoutType = l
		} else {
			b.LayoutType = domain.LayoutHero
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r ContentRepository) InsertBanner(b domain.Banner) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO banners (title, image_url, target_url, layout_type, sort_order, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, b.Title, b.ImageURL, b.TargetURL, string(b.LayoutType), b.SortOrder, b.Active)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdateBanner(b domain.Banner) error {
	if b.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`
		UPDATE banners SET title=?, image_url=?, target_url=?, layout_type=?, sort_order=?, active=?
		WHERE id=?
	`, b.Title, b.ImageURL, b.TargetURL, string(b.LayoutType), b.SortOrder, b.Active, b.ID)
	return err
}

func (r ContentRepository) DeleteBanner(id int64) error {
	_, err := r.db().Exec(`DELETE FROM banners WHERE id=?`, id)
	return err
}

// ===== promos =====

func (r ContentRepository) ListPromos(activeOnly bool) ([]domain.Promo, error) {
	where := "1=1"
	if activeOnly {
		where = "active=1"
	}
	rows, err := r.db().Query(`
		SELECT id, COALESCE(title,''), COALESCE(description,''), COALESCE(image_url,''), COALESCE(active,1)
		FROM promos WHERE ` + where + ` ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Promo{}
	for rows.Next() {
		var p domain.Promo
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Active); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r ContentRepository) InsertPromo(p domain.Promo) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO promos (title, description, image_url, active) VALUES (?, ?, ?, ?)
	`, p.Title, p.Description, p.ImageURL, p.Active)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdatePromo(p domain.Promo) error {
	if p.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`
		UPDATE promos SET title=?, description=?, image_url=?, active=? WHERE id=?
	`, p.Title, p.Description, p.ImageURL, p.Active, p.ID)
	return err
}

func (r ContentRepository) DeletePromo(id int64) error {
	_, err := r.db().Exec(`DELETE FROM promos WHERE id=?`, id)
	return err
}

// ===== faqs =====

func (r ContentRepository) ListFAQs(activeOnly bool) ([]domain.FAQ, error) {
	where := "1=1"
	if activeOnly {
		where = "active=1"
	}
	rows, err := r.db().Query(`
		SELECT id, COALESCE(question,''), COALESCE(answer,''), COALESCE(sort_order,0), COALESCE(active,1)
		FROM faqs WHERE ` + where + ` ORDER BY sort_order ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.FAQ{}
	for rows.Next() {
		var f domain.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.SortOrder, &f.Active); err != nil {
			return out, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r ContentRepository) InsertFAQ(f domain.FAQ) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO faqs (question, answer, sort_order, active) VALUES (?, ?, ?, ?)
	`, f.Question, f.Answer, f.SortOrder, f.Active)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdateFAQ(f domain.FAQ) error {
	if f.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`
		UPDATE faqs SET question=?, answer=?, sort_order=?, active=? WHERE id=?
	`, f.Question, f.Answer, f.SortOrder, f.Active, f.ID)
	return err
}

func (r ContentRepository) DeleteFAQ(id int64) error {
	_, err := r.db().Exec(`DELETE FROM faqs WHERE id=?`, id)
	return err
}

// ===== testimonials =====

func (r ContentRepository) ListTestimonials(activeOnly bool) ([]domain.Testimonial, error) {
	where := "1=1"
	if activeOnly {
		where = "active=1"
	}
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(city,''), COALESCE(message,''), COALESCE(rating,0), COALESCE(active,1)
		FROM testimonials WHERE ` + where + ` ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Testimonial{}
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.City, &t.Message, &t.Rating, &t.Active); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r ContentRepository) InsertTestimonial(t domain.Testimonial) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO testimonials (name, city, message, rating, active) VALUES (?, ?, ?, ?, ?)
	`, t.Name, t.City, t.Message, t.Rating, t.Active)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdateTestimonial(t domain.Testimonial) error {
	if t.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`
		UPDATE testimonials SET name=?, city=?, message=?, rating=?, active=? WHERE id=?
	`, t.Name, t.City, t.Message, t.Rating, t.Active, t.ID)
	return err
}

func (r ContentRepository) DeleteTestimonial(id int64) error {
	_, err := r.db().Exec(`DELETE FROM testimonials WHERE id=?`, id)
	return err
}

// ===== videos =====

func (r ContentRepository) ListVideos(activeOnly bool) ([]domain.Video, error) {
	where := "1=1"
	if activeOnly {
		where = "active=1"
	}
	rows, err := r.db().Query(`
		SELECT id, COALESCE(title,''), COALESCE(video_url,''), COALESCE(active,1)
		FROM videos WHERE ` + where + ` ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Video{}
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.VideoURL, &v.Active); err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r ContentRepository) InsertVideo(v domain.Video) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO videos (title, video_url, active) VALUES (?, ?, ?)
	`, v.Title, v.VideoURL, v.Active)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdateVideo(v domain.Video) error {
	if v.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "tidak valid"}
	}
	_, err := r.db().Exec(`
		UPDATE videos SET title=?, video_url=?, active=? WHERE id=?
	`, v.Title, v.VideoURL, v.Active, v.ID)
	return err
}

func (r ContentRepository) DeleteVideo(id int64) error {
	_, err := r.db().Exec(`DELETE FROM videos WHERE id=?`, id)
	return err
}
