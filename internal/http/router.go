package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fleet-service/internal/http/middleware"
)

func NewRouter(
	handler *Handler,
	authMiddleware gin.HandlerFunc,
	bootstrapLimiter *middleware.RateLimiter,
	uploadsDir string,
	env string,
) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", handler.healthz)

	router.Static("/uploads", uploadsDir)

	// Surfaces used without a session: login, first-admin bootstrap and
	// the customer booking page.
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", handler.login)
		public.POST("/auth/bootstrap-admin", middleware.RateLimit(bootstrapLimiter), handler.bootstrapAdmin)

		public.GET("/routes", handler.listRoutes)
		public.GET("/payment-methods/active", handler.listActivePaymentMethods)
		public.POST("/bookings", handler.createBooking)
		public.POST("/bookings/payment-proof", handler.uploadPaymentProof)

		public.GET("/ws/locations", handler.serveLocationFeed)
	}

	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		protected.GET("/users", handler.listUsers)
		protected.POST("/users", handler.createUser)
		protected.DELETE("/users/:id", handler.deleteUser)
		protected.GET("/map-token", handler.getMapToken)

		protected.GET("/cars", handler.listCars)
		protected.POST("/cars", handler.createCar)
		protected.PUT("/cars/:id", handler.updateCar)
		protected.DELETE("/cars/:id", handler.deleteCar)

		protected.GET("/drivers", handler.listDrivers)
		protected.POST("/drivers", handler.createDriver)
		protected.PUT("/drivers/:id", handler.updateDriver)
		protected.DELETE("/drivers/:id", handler.deleteDriver)

		protected.POST("/routes", handler.createRoute)
		protected.PUT("/routes/:id", handler.updateRoute)
		protected.DELETE("/routes/:id", handler.deleteRoute)

		protected.GET("/maintenance-logs", handler.listMaintenanceLogs)
		protected.POST("/maintenance-logs", handler.createMaintenanceLog)
		protected.DELETE("/maintenance-logs/:id", handler.deleteMaintenanceLog)

		protected.GET("/payment-methods", handler.listPaymentMethods)
		protected.POST("/payment-methods", handler.createPaymentMethod)
		protected.PUT("/payment-methods/:id", handler.updatePaymentMethod)
		protected.DELETE("/payment-methods/:id", handler.deletePaymentMethod)

		protected.GET("/preorders", handler.listPreorders)
		protected.GET("/preorders/:id", handler.getPreorder)
		protected.PUT("/preorders/:id", handler.updatePreorder)
		protected.POST("/preorders/:id/assign", handler.assignPreorder)
		protected.POST("/preorders/:id/start-trip", handler.startPreorderTrip)
		protected.POST("/preorders/:id/cancel", handler.cancelPreorder)
		protected.DELETE("/preorders/:id", handler.deletePreorder)

		protected.GET("/trips/live", handler.listLiveTrips)
		protected.GET("/trips/history", handler.listTripHistory)
		protected.GET("/trips/:id", handler.getTrip)
		protected.PUT("/trips/:id/status", handler.updateTripStatus)

		protected.GET("/ledger", handler.listLedger)
		protected.POST("/ledger", handler.createLedgerEntry)
		protected.DELETE("/ledger/:id", handler.deleteLedgerEntry)

		protected.GET("/energy-logs", handler.listEnergyLogs)
		protected.POST("/energy-logs", handler.createEnergyLog)
		protected.DELETE("/energy-logs/:id", handler.deleteEnergyLog)

		protected.GET("/analytics/dashboard", handler.getDashboard)
		protected.GET("/analytics/report", handler.getAnalyticsReport)

		protected.POST("/locations", handler.recordLocation)
		protected.GET("/locations/latest", handler.latestLocations)

		protected.POST("/sync", handler.runSync)
	}

	return router
}
