// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/config"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/database"
	bookingRepoPkg "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/booking"
	cleanerRepoPkg "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/cleaner"
	customerRepoPkg "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/customer"
	identityRepoPkg "github.com/JohnRey-Adao/AppDev2-CleaningService/database/repository/identity"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/handlers"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/middleware"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/routes"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/services/booking"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/services/cleaner"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/services/customer"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	cleanerRepo := cleanerRepoPkg.NewMongoCleanerRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	identityRepo := identityRepoPkg.NewMongoIdentityRepo()

	// services.
	cleanerService := &cleaner.DefaultCleanerService{
		Repo:       cleanerRepo,
		Identities: identityRepo,
		Bookings:   bookingRepo,
	}
	customerService := &customer.DefaultCustomerService{
		Repo:       customerRepo,
		Identities: identityRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:  bookingRepo,
		Cleaners:  cleanerRepo,
		Customers: customerRepo,
		Locks: &booking.RedisDayLocker{
			Client: utils.GetLockClient(),
			TTL:    time.Duration(config.AppConfig.BookingLockTTL) * time.Second,
		},
		Txn:       &database.MongoTxnRunner{Client: database.MongoClient},
		Policy:    booking.AllowAny,
		Listeners: []booking.EventListener{cleanerService},
	}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	cleanerHandler := handlers.NewCleanerHandler(cleanerService, logger)
	customerHandler := handlers.NewCustomerHandler(customerService, logger)

	routes.RegisterRoutes(router, bookingHandler, cleanerHandler, customerHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
