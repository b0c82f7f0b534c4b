package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelia/internal/domain"
	"travelia/internal/http/middleware"
	"travelia/internal/repositories"
	"travelia/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo: repositories.BookingRepository{},
		Pricing:     services.PricingService{ScheduleRepo: repositories.ScheduleRepository{}},
		RequestID:   middleware.GetRequestID(c),
	}
}

// POST /api/bookings (public booking flow; status always pending)
func CreateBooking(c *gin.Context) {
	var in services.CreateBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}

	b, err := bookingService(c).Create(in, false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// POST /api/bookings/lookup (order tracking: order no + phone)
func LookupBooking(c *gin.Context) {
	var req struct {
		OrderNo string `json:"orderNo"`
		Phone   string `json:"phone"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := bookingService(c).Lookup(req.OrderNo, req.Phone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings/submit-proof
func SubmitPaymentProof(c *gin.Context) {
	var req struct {
		OrderNo  string `json:"orderNo"`
		Phone    string `json:"phone"`
		FileName string `json:"fileName"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := bookingService(c).SubmitProof(req.OrderNo, req.Phone, req.FileName)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/admin/bookings?date=&status=&from=&to=
func ListBookings(c *gin.Context) {
	repo := repositories.BookingRepository{}
	out, err := repo.List(repositories.BookingFilter{
		TripDate:      c.Query("date"),
		PaymentStatus: c.Query("status"),
		RouteFrom:     c.Query("from"),
		RouteTo:       c.Query("to"),
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil booking", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/admin/bookings (offline entry; admin may choose status)
func CreateBookingAdmin(c *gin.Context) {
	var in services.CreateBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}

	b, err := bookingService(c).Create(in, true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// PUT /api/admin/bookings/:id
func UpdateBooking(c *gin.Context) {
	id64, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	var b domain.Booking
	if !BindJSONOrError(c, &b) {
		return
	}
	b.ID = id64

	repo := repositories.BookingRepository{}
	if _, err := repo.GetByID(id64); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Update(b); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal update booking", err)
		return
	}

	updated, err := repo.GetByID(id64)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PUT /api/admin/bookings/:id/status {"paymentStatus":"paid"}
// Covers verify (paid), reject proof (pending), cancel and revert.
func SetBookingStatus(c *gin.Context) {
	id64, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id64 <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}

	var req struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.PaymentStatus) == "" {
		RespondError(c, http.StatusBadRequest, "paymentStatus wajib diisi", nil)
		return
	}

	b, err := bookingService(c).SetStatus(id64, req.PaymentStatus)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
