package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelia/internal/domain"
	"travelia/internal/repositories"
	"travelia/internal/utils"

	"github.com/gin-gonic/gin"
)

// TripDTO is what the back office renders: the stored trip plus the
// derived totals, so the frontend never re-implements the arithmetic.
type TripDTO struct {
	domain.TripOperation
	TotalIncome  int64 `json:"totalIncome"`
	TotalExpense int64 `json:"totalExpense"`
	Profit       int64 `json:"profit"`
}

func toTripDTO(t domain.TripOperation) TripDTO {
	return TripDTO{
		TripOperation: t,
		TotalIncome:   t.TotalIncome(),
		TotalExpense:  t.TotalExpense(),
		Profit:        t.Profit(),
	}
}

// validateTrip also normalizes the departure time in place.
func validateTrip(t *domain.TripOperation) error {
	if _, err := utils.ParseDate(t.Date); err != nil {
		return domain.ValidationError{Field: "date", Msg: "format harus YYYY-MM-DD"}
	}
	if strings.TrimSpace(t.RouteFrom) == "" || strings.TrimSpace(t.RouteTo) == "" {
		return domain.ValidationError{Field: "route", Msg: "asal dan tujuan wajib diisi"}
	}
	if strings.TrimSpace(t.DepartureTime) != "" {
		hm, err := utils.NormalizeTimeHM(t.DepartureTime)
		if err != nil {
			return domain.ValidationError{Field: "departureTime", Msg: err.Error()}
		}
		t.DepartureTime = hm
	}
	if t.PassengerCount < 0 {
		return domain.ValidationError{Field: "passengerCount", Msg: "tidak boleh negatif"}
	}
	for _, v := range []int64{
		t.TicketIncome, t.OtherIncome,
		t.FuelCost, t.FerryCost, t.SnackCost, t.MealCost,
		t.DriverFee, t.DriverMealCost, t.TollCost, t.ParkingCost, t.OtherCost,
	} {
		if v < 0 {
			return domain.ValidationError{Field: "amount", Msg: "nominal tidak boleh negatif"}
		}
	}
	return nil
}

// GET /api/admin/trips?year=2026&month=1
func ListTrips(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))

	repo := repositories.TripRepository{}
	trips, err := repo.List(year, month)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data trip", err)
		return
	}

	out := make([]TripDTO, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripDTO(t))
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/trips/:id
func GetTrip(c *gin.Context) {
	id64, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	repo := repositories.TripRepository{}
	t, err := repo.GetByID(id64)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTripDTO(t))
}

// POST /api/admin/trips (manual entry, independent of manifest promotion)
func CreateTrip(c *gin.Context) {
	var t domain.TripOperation
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := validateTrip(&t); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.TripRepository{}
	id, err := repo.Insert(t)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan trip", err)
		return
	}
	t.ID = id
	c.JSON(http.StatusCreated, toTripDTO(t))
}

// PUT /api/admin/trips/:id
func UpdateTrip(c *gin.Context) {
	id64, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	var t domain.TripOperation
	if !BindJSONOrError(c, &t) {
		return
	}
	t.ID = id64
	if err := validateTrip(&t); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.TripRepository{}
	if _, err := repo.GetByID(id64); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Update(t); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal update trip", err)
		return
	}
	c.JSON(http.StatusOK, toTripDTO(t))
}

// DELETE /api/admin/trips/:id
func DeleteTrip(c *gin.Context) {
	id64, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	repo := repositories.TripRepository{}
	if _, err := repo.GetByID(id64); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Delete(id64); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menghapus trip", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
