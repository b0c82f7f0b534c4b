package handlers

import (
	"net/http"
	"strconv"
	"time"

	"travelia/internal/repositories"
	"travelia/internal/services"

	"github.com/gin-gonic/gin"
)

func reportsService() services.ReportsService {
	return services.ReportsService{TripRepo: repositories.TripRepository{}}
}

func yearOrNow(c *gin.Context) int {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		return time.Now().Year()
	}
	return year
}

// GET /api/admin/reports/daily?year=2026&month=1
func DailyReport(c *gin.Context) {
	year := yearOrNow(c)
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(time.Now().Month())
	}

	res, err := reportsService().Daily(year, time.Month(month))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat laporan harian", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/reports/weekly?year=2026
func WeeklyReport(c *gin.Context) {
	res, err := reportsService().Weekly(yearOrNow(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat laporan mingguan", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/reports/monthly?year=2026
func MonthlyReport(c *gin.Context) {
	res, err := reportsService().Monthly(yearOrNow(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat laporan bulanan", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/admin/reports/yearly
func YearlyReport(c *gin.Context) {
	res, err := reportsService().Yearly()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat laporan tahunan", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
