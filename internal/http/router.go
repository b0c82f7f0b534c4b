package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelia/internal/config"
	h "travelia/internal/http/handlers"
	"travelia/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Public marketing site
		api.GET("/content", h.PublicContent)
		api.GET("/schedules", h.ListSchedules)
		api.POST("/quote", h.GetQuote)

		// Public booking flow
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.POST("/lookup", h.LookupBooking)
		bookings.POST("/submit-proof", h.SubmitPaymentProof)

		// Back office
		admin := api.Group("/admin")
		admin.Use(middleware.Auth([]byte(env.JWTSecret)), middleware.RequireRoles("admin", "owner"))
		{
			admin.GET("/bookings", h.ListBookings)
			admin.POST("/bookings", h.CreateBookingAdmin)
			admin.PUT("/bookings/:id", h.UpdateBooking)
			admin.PUT("/bookings/:id/status", h.SetBookingStatus)

			admin.POST("/schedules", h.CreateSchedule)
			admin.PUT("/schedules/:id", h.UpdateSchedule)
			admin.DELETE("/schedules/:id", h.DeleteSchedule)

			admin.GET("/trips", h.ListTrips)
			admin.GET("/trips/:id", h.GetTrip)
			admin.POST("/trips", h.CreateTrip)
			admin.PUT("/trips/:id", h.UpdateTrip)
			admin.DELETE("/trips/:id", h.DeleteTrip)

			admin.GET("/manifest", h.ListManifestGroups)
			admin.POST("/manifest/promote", h.PromoteManifest)

			reports := admin.Group("/reports")
			reports.GET("/daily", h.DailyReport)
			reports.GET("/weekly", h.WeeklyReport)
			reports.GET("/monthly", h.MonthlyReport)
			reports.GET("/yearly", h.YearlyReport)

			docs := admin.Group("/docs")
			docs.GET("/ticket/:bookingId", h.DownloadTicket)
			docs.GET("/receipt/:tripId", h.DownloadReceipt)
			docs.POST("/manifest", h.DownloadManifest)

			admin.GET("/banners", h.ListBanners)
			admin.POST("/banners", h.CreateBanner)
			admin.PUT("/banners/:id", h.UpdateBanner)
			admin.DELETE("/banners/:id", h.DeleteBanner)

			admin.GET("/promos", h.ListPromos)
			admin.POST("/promos", h.CreatePromo)
			admin.PUT("/promos/:id", h.UpdatePromo)
			admin.DELETE("/promos/:id", h.DeletePromo)

			admin.GET("/faqs", h.ListFAQs)
			admin.POST("/faqs", h.CreateFAQ)
			admin.PUT("/faqs/:id", h.UpdateFAQ)
			admin.DELETE("/faqs/:id", h.DeleteFAQ)

			admin.GET("/testimonials", h.ListTestimonials)
			admin.POST("/testimonials", h.CreateTestimonial)
			admin.PUT("/testimonials/:id", h.UpdateTestimonial)
			admin.DELETE("/testimonials/:id", h.DeleteTestimonial)

			admin.GET("/videos", h.ListVideos)
			admin.POST("/videos", h.CreateVideo)
			admin.PUT("/videos/:id", h.UpdateVideo)
			admin.DELETE("/videos/:id", h.DeleteVideo)
		}
	}

	return r
}
