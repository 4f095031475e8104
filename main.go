package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sweeply/config"
	"sweeply/cron"
	"sweeply/database"
	catalogRepo "sweeply/database/repository/catalog"
	cleanerRepo "sweeply/database/repository/cleaner"
	draftRepo "sweeply/database/repository/draft"
	"sweeply/handlers"
	"sweeply/middleware"
	"sweeply/routes"
	"sweeply/services/booking"
	"sweeply/services/notification"
	"sweeply/services/payment"
	"sweeply/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	config.MustValidate()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	catalog := catalogRepo.NewMongoCatalogRepo()
	drafts := draftRepo.NewMongoDraftRepo()
	cleaners := cleanerRepo.NewMongoCleanerRepo()

	// strategy implementations, selected once at startup.
	var availabilitySource booking.AvailabilitySource
	if config.AppConfig.AvailabilityMock {
		availabilitySource = &booking.MockAvailabilitySource{}
	} else {
		availabilitySource = &booking.RepoAvailabilitySource{Cleaners: cleaners}
	}

	var gateway payment.Gateway
	if config.AppConfig.PaymentsMock {
		gateway = payment.NewFakeGateway()
	} else {
		gateway = payment.NewStripeGateway(config.AppConfig.Currency, config.AppConfig.PublicBaseURL)
	}

	var mailer notification.Mailer
	if config.AppConfig.SendGridAPIKey != "" {
		mailer = notification.NewSendGridMailer(config.AppConfig.SendGridAPIKey, config.AppConfig.EmailFrom)
	} else {
		mailer = notification.NoopMailer{}
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Drafts:       drafts,
		Cleaners:     cleaners,
		Catalog:      catalog,
		Availability: availabilitySource,
		CacheClient:  utils.GetCacheClient(),
		Logger:       logger,
	}

	reminders := cron.NewEnqueuer()
	paymentService := &payment.DefaultPaymentService{
		Drafts:    drafts,
		Gateway:   gateway,
		Mailer:    mailer,
		Reminders: reminders,
		Logger:    logger,
	}

	// Background worker: draft GC and booking reminders.
	cron.InitWorker(drafts, mailer)

	// Health monitoring for the probes.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient, config.GetEnv())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalog, logger),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Payment: handlers.NewPaymentHandler(paymentService, logger),
		Quote:   handlers.NewQuoteHandler(catalog, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
