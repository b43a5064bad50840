package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/handlers"
)

// RegisterRoutes wires the full REST surface onto the router.
func RegisterRoutes(
	r *gin.Engine,
	bookingHandler *handlers.BookingHandler,
	cleanerHandler *handlers.CleanerHandler,
	customerHandler *handlers.CustomerHandler,
) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          time.Hour,
	}))

	registerBookingRoutes(r, bookingHandler)
	registerCleanerRoutes(r, cleanerHandler)
	registerCustomerRoutes(r, customerHandler)
}

func registerBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", h.CreateBooking)
		api.GET("", h.ListBookings)
		api.GET("/:id", h.GetBooking)
		api.PUT("/:id", h.UpdateBooking)
		api.DELETE("/:id", h.DeleteBooking)

		api.GET("/customer/:customerId", h.ListByCustomer)
		api.GET("/cleaner/:cleanerId", h.ListByCleaner)
		api.GET("/availability/:cleanerId/:date", h.CheckAvailability)

		api.PUT("/:id/confirm", h.ConfirmBooking)
		api.PUT("/:id/start", h.StartBooking)
		api.PUT("/:id/complete", h.CompleteBooking)
		api.PUT("/:id/cancel", h.CancelBooking)
		api.PUT("/:id/status", h.UpdateStatus)
	}
}

func registerCleanerRoutes(r *gin.Engine, h *handlers.CleanerHandler) {
	api := r.Group("/api/cleaners")
	{
		api.POST("/register", h.Register)
		api.GET("", h.ListCleaners)
		api.GET("/available", h.ListAvailable)
		api.GET("/city/:city", h.ListByCity)
		api.GET("/city/:city/available", h.ListAvailableByCity)
		api.GET("/region/:region", h.ListByRegion)
		api.GET("/max-rate/:maxRate", h.ListByMaxRate)
		api.GET("/:id", h.GetCleaner)
		api.PUT("/:id", h.UpdateCleaner)
		api.PUT("/:id/status", h.UpdateStatus)
		api.PUT("/:id/rate", h.UpdateRate)
		api.DELETE("/:id", h.DeleteCleaner)

		api.PUT("/migrate-pending-to-available", h.MigratePendingToAvailable)
	}
}

func registerCustomerRoutes(r *gin.Engine, h *handlers.CustomerHandler) {
	api := r.Group("/api/customers")
	{
		api.POST("/register", h.Register)
		api.GET("", h.ListCustomers)
		api.GET("/:id", h.GetCustomer)
		api.PUT("/:id", h.UpdateCustomer)
		api.PUT("/:id/address", h.UpdateAddress)
		api.DELETE("/:id", h.DeleteCustomer)
	}
}
