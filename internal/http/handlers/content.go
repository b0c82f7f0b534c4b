package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelia/internal/domain"
	"travelia/internal/repositories"

	"github.com/gin-gonic/gin"
)

func contentRepo() repositories.ContentRepository {
	return repositories.ContentRepository{}
}

func pathID(c *gin.Context) (int64, bool) {
	id64, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return 0, false
	}
	return id64, true
}

// GET /api/content — everything the landing page needs, active rows only.
func PublicContent(c *gin.Context) {
	repo := contentRepo()

	banners, err := repo.ListBanners(true)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil banner", err)
		return
	}
	promos, err := repo.ListPromos(true)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil promo", err)
		return
	}
	faqs, err := repo.ListFAQs(true)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil faq", err)
		return
	}
	testimonials, err := repo.ListTestimonials(true)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil testimoni", err)
		return
	}
	videos, err := repo.ListVideos(true)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil video", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"banners":      banners,
		"promos":       promos,
		"faqs":         faqs,
		"testimonials": testimonials,
		"videos":       videos,
	})
}

// ===== banners =====

func ListBanners(c *gin.Context) {
	out, err := contentRepo().ListBanners(false)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil banner", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type bannerRequest struct {
	Title      string `json:"title"`
	ImageURL   string `json:"imageUrl"`
	TargetURL  string `json:"targetUrl"`
	LayoutType string `json:"layoutType"`
	SortOrder  int    `json:"sortOrder"`
	Active     bool   `json:"active"`
}

func (req bannerRequest) toDomain() (domain.Banner, error) {
	layout, ok := domain.ParseBannerLayout(req.LayoutType)
	if !ok {
		return domain.Banner{}, domain.ValidationError{Field: "layoutType", Msg: "harus hero, strip, atau card"}
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		return domain.Banner{}, domain.ValidationError{Field: "imageUrl", Msg: "wajib diisi"}
	}
	return domain.Banner{
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		TargetURL:  req.TargetURL,
		LayoutType: layout,
		SortOrder:  req.SortOrder,
		Active:     req.Active,
	}, nil
}

func CreateBanner(c *gin.Context) {
	var req bannerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := req.toDomain()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	id, err := contentRepo().InsertBanner(b)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan banner", err)
		return
	}
	b.ID = id
	c.JSON(http.StatusCreated, b)
}

func UpdateBanner(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	var req bannerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := req.toDomain()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	b.ID = id64
	if err := contentRepo().UpdateBanner(b); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal update banner", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func DeleteBanner(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	if err := contentRepo().DeleteBanner(id64); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus banner", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ===== promos =====

func ListPromos(c *gin.Context) {
	out, err := contentRepo().ListPromos(false)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil promo", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreatePromo(c *gin.Context) {
	var p domain.Promo
	if !BindJSONOrError(c, &p) {
		return
	}
	if strings.TrimSpace(p.Title) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "title", Msg: "wajib diisi"})
		return
	}
	id, err := contentRepo().InsertPromo(p)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan promo", err)
		return
	}
	p.ID = id
	c.JSON(http.StatusCreated, p)
}

func UpdatePromo(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	var p domain.Promo
	if !BindJSONOrError(c, &p) {
		return
	}
	p.ID = id64
	if err := contentRepo().UpdatePromo(p); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal update promo", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func DeletePromo(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	if err := contentRepo().DeletePromo(id64); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus promo", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ===== faqs =====

func ListFAQs(c *gin.Context) {
	out, err := contentRepo().ListFAQs(false)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil faq", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateFAQ(c *gin.Context) {
	var f domain.FAQ
	if !BindJSONOrError(c, &f) {
		return
	}
	if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "faq", Msg: "pertanyaan dan jawaban wajib diisi"})
		return
	}
	id, err := contentRepo().InsertFAQ(f)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan faq", err)
		return
	}
	f.ID = id
	c.JSON(http.StatusCreated, f)
}

func UpdateFAQ(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	var f domain.FAQ
	if !BindJSONOrError(c, &f) {
		return
	}
	f.ID = id64
	if err := contentRepo().UpdateFAQ(f); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal update faq", err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func DeleteFAQ(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	if err := contentRepo().DeleteFAQ(id64); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus faq", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ===== testimonials =====

func ListTestimonials(c *gin.Context) {
	out, err := contentRepo().ListTestimonials(false)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil testimoni", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateTestimonial(c *gin.Context) {
	var t domain.Testimonial
	if !BindJSONOrError(c, &t) {
		return
	}
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Message) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "testimonial", Msg: "nama dan pesan wajib diisi"})
		return
	}
	if t.Rating < 1 || t.Rating > 5 {
		RespondDomainError(c, domain.ValidationError{Field: "rating", Msg: "harus 1 sampai 5"})
		return
	}
	id, err := contentRepo().InsertTestimonial(t)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan testimoni", err)
		return
	}
	t.ID = id
	c.JSON(http.StatusCreated, t)
}

func UpdateTestimonial(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	var t domain.Testimonial
	if !BindJSONOrError(c, &t) {
		return
	}
	t.ID = id64
	if err := contentRepo().UpdateTestimonial(t); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal update testimoni", err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func DeleteTestimonial(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	if err := contentRepo().DeleteTestimonial(id64); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus testimoni", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ===== videos =====

func ListVideos(c *gin.Context) {
	out, err := contentRepo().ListVideos(false)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil video", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateVideo(c *gin.Context) {
	var v domain.Video
	if !BindJSONOrError(c, &v) {
		return
	}
	if strings.TrimSpace(v.VideoURL) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "videoUrl", Msg: "wajib diisi"})
		return
	}
	id, err := contentRepo().InsertVideo(v)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan video", err)
		return
	}
	v.ID = id
	c.JSON(http.StatusCreated, v)
}

func UpdateVideo(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	var v domain.Video
	if !BindJSONOrError(c, &v) {
		return
	}
	v.ID = id64
	if err := contentRepo().UpdateVideo(v); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal update video", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func DeleteVideo(c *gin.Context) {
	id64, ok := pathID(c)
	if !ok {
		return
	}
	if err := contentRepo().DeleteVideo(id64); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus video", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
