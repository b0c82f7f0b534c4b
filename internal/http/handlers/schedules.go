package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelia/internal/domain"
	"travelia/internal/repositories"
	"travelia/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/schedules?all=1 (public search reads active only)
func ListSchedules(c *gin.Context) {
	repo := repositories.ScheduleRepository{}
	activeOnly := c.Query("all") != "1"
	out, err := repo.List(activeOnly)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil jadwal", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/quote {"routeFrom":"...","routeTo":"...","passengerCount":2}
// Always answers: routes without a schedule get the fallback price.
func GetQuote(c *gin.Context) {
	var req struct {
		RouteFrom      string `json:"routeFrom"`
		RouteTo        string `json:"routeTo"`
		PassengerCount int    `json:"passengerCount"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.RouteFrom) == "" || strings.TrimSpace(req.RouteTo) == "" {
		RespondError(c, http.StatusBadRequest, "routeFrom dan routeTo wajib diisi", nil)
		return
	}
	if req.PassengerCount <= 0 {
		RespondError(c, http.StatusBadRequest, "passengerCount minimal 1", nil)
		return
	}

	pricing := services.PricingService{ScheduleRepo: repositories.ScheduleRepository{}}
	perSeat, total := pricing.Quote(req.RouteFrom, req.RouteTo, req.PassengerCount)
	c.JSON(http.StatusOK, gin.H{
		"pricePerSeat": perSeat,
		"total":        total,
	})
}

func validateSchedule(s domain.Schedule) error {
	if strings.TrimSpace(s.RouteFrom) == "" || strings.TrimSpace(s.RouteTo) == "" {
		return domain.ValidationError{Field: "route", Msg: "asal dan tujuan wajib diisi"}
	}
	if s.Price < 0 {
		return domain.ValidationError{Field: "price", Msg: "tidak boleh negatif"}
	}
	return nil
}

// POST /api/admin/schedules
func CreateSchedule(c *gin.Context) {
	var s domain.Schedule
	if !BindJSONOrError(c, &s) {
		return
	}
	if err := validateSchedule(s); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.ScheduleRepository{}
	id, err := repo.Insert(s)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan jadwal", err)
		return
	}
	s.ID = id
	c.JSON(http.StatusCreated, s)
}

// PUT /api/admin/schedules/:id
func UpdateSchedule(c *gin.Context) {
	id64, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	var s domain.Schedule
	if !BindJSONOrError(c, &s) {
		return
	}
	if err := validateSchedule(s); err != nil {
		RespondDomainError(c, err)
		return
	}
	s.ID = id64

	repo := repositories.ScheduleRepository{}
	if err := repo.Update(s); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal update jadwal", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /api/admin/schedules/:id
func DeleteSchedule(c *gin.Context) {
	id64, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	repo := repositories.ScheduleRepository{}
	if err := repo.Delete(id64); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus jadwal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
