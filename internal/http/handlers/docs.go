package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"travelia/internal/domain"
	"travelia/internal/http/middleware"
	"travelia/internal/repositories"
	"travelia/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		TripRepo:    repositories.TripRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

func sendPDF(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// GET /api/admin/docs/ticket/:bookingId
func DownloadTicket(c *gin.Context) {
	id64, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "bookingId tidak valid", nil)
		return
	}
	data, filename, err := docsService(c).GenerateTicket(id64)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}

// GET /api/admin/docs/receipt/:tripId
func DownloadReceipt(c *gin.Context) {
	id64, err := strconv.ParseInt(c.Param("tripId"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "tripId tidak valid", nil)
		return
	}
	data, filename, err := docsService(c).GenerateReceipt(id64)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, data, filename)
}

// POST /api/admin/docs/manifest — the body names the departure group.
func DownloadManifest(c *gin.Context) {
	var key services.GroupKey
	if !BindJSONOrError(c, &key) {
		return
	}

	groups, err := manifestService(c).ListGroups(key.TripDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	for _, g := range groups {
		if g.Key == key {
			data, filename, err := docsService(c).GenerateManifest(g)
			if err != nil {
				RespondDomainError(c, err)
				return
			}
			sendPDF(c, data, filename)
			return
		}
	}
	RespondDomainError(c, domain.NotFoundError{Resource: "manifest group"})
}
