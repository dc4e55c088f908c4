package routes

import (
	"net/http"
	"time"

	"tropicab/handlers"
	"tropicab/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the widget conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.ChatHandler)
		api.POST("/price-scan", hb.PriceScanHandler)
		api.DELETE("/:sessionID", hb.ClearChatHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.BookingHistoryHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterCatalogRoutes registers the public reference-data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/vehicles", hb.ListVehiclesHandler)
		api.GET("/hotels", hb.ListHotelsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for catalog administration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.AdminLoginHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.PUT("/hotels", hb.SaveHotelHandler)
		adminGroup.DELETE("/hotels/:id", hb.DeleteHotelHandler)
		adminGroup.PUT("/vehicles", hb.SaveVehicleTypeHandler)
		adminGroup.PUT("/pricing-rules", hb.SavePricingRuleHandler)
		adminGroup.DELETE("/pricing-rules/:id", hb.DeletePricingRuleHandler)
		adminGroup.PUT("/discount", hb.SetDiscountHandler)
		adminGroup.POST("/vehicles/image", hb.UploadVehicleImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Tropicab"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterChatRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
