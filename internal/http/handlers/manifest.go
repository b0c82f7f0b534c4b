package handlers

import (
	"net/http"

	"travelia/internal/http/middleware"
	"travelia/internal/repositories"
	"travelia/internal/services"

	"github.com/gin-gonic/gin"
)

func manifestService(c *gin.Context) services.ManifestService {
	return services.ManifestService{
		BookingRepo: repositories.BookingRepository{},
		TripRepo:    repositories.TripRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/admin/manifest?date=2026-01-12
func ListManifestGroups(c *gin.Context) {
	groups, err := manifestService(c).ListGroups(c.Query("date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// POST /api/admin/manifest/promote
// Body carries the group key plus an optional driver fee percentage.
func PromoteManifest(c *gin.Context) {
	var req struct {
		services.GroupKey
		DriverFeePct *float64 `json:"driverFeePct"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}

	id, err := manifestService(c).Promote(req.GroupKey, req.DriverFeePct)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	t, err := repositories.TripRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTripDTO(t))
}
