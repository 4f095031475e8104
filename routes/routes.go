package routes

import (
	"time"

	"sweeply/handlers"
	"sweeply/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.GetServices)
		api.GET("/regions", hb.Catalog.GetRegions)
		api.GET("/suburbs", hb.Catalog.GetSuburbs)
	}
}

// RegisterBookingRoutes registers the booking flow endpoints. Draft
// endpoints need a browser session to key the draft.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/pricing/calculate", hb.Booking.CalculateQuote)
		api.POST("/availability", hb.Booking.CheckAvailability)
		api.POST("/bookings/select-cleaner", hb.Booking.SelectCleaner)

		draft := api.Group("/bookings/draft")
		draft.Use(middleware.SessionMiddleware())
		draft.PUT("", hb.Booking.UpsertDraft)
		draft.GET("", hb.Booking.GetDraft)
		draft.DELETE("", hb.Booking.CancelDraft)
	}
}

// RegisterPaymentRoutes registers the payment handoff endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/initiate", hb.Payment.InitiatePayment)
		api.GET("/verify", hb.Payment.VerifyPayment)
	}
}

// RegisterQuoteRoutes registers the marketing quote funnel.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/quotes", hb.Quote.SubmitQuote)
}

// RegisterHealthRoutes registers the health probes.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/healthz", handlers.HealthCheck)
	r.GET("/api/health", handlers.HealthCheck)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterHealthRoutes(r)
}
