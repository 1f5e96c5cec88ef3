package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partypilot/config"
	"partypilot/cron"
	"partypilot/database"
	enquiryRepoPkg "partypilot/database/repository/enquiry"
	partyRepoPkg "partypilot/database/repository/party"
	registryRepoPkg "partypilot/database/repository/registry"
	supplierRepoPkg "partypilot/database/repository/supplier"
	"partypilot/events"
	"partypilot/handlers"
	"partypilot/metrics"
	"partypilot/middleware"
	"partypilot/routes"
	"partypilot/services/enquiry"
	"partypilot/services/notification"
	"partypilot/services/plan"
	"partypilot/services/profile"
	"partypilot/services/registry"
	"partypilot/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()
	metrics.InitMetrics(config.AppConfig.MetricsPrefix)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	supplierRepo := supplierRepoPkg.NewMongoSupplierRepo()
	partyRepo := partyRepoPkg.NewMongoPartyRepo()
	enquiryRepo := enquiryRepoPkg.NewMongoEnquiryRepo()
	registryRepo := registryRepoPkg.NewMongoRegistryRepo()

	// Async client for scheduling reminder tasks.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// In-process event bus connecting the domain services.
	bus := events.NewInMemoryBus()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(partyRepo, supplierRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	profileService, err := profile.NewDefaultProfileService(supplierRepo, bus)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize profile service: %v", err)
	}

	enquiryService, err := enquiry.NewDefaultEnquiryService(
		enquiryRepo, partyRepo, supplierRepo, bus, notificationService, asynqClient,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize enquiry service: %v", err)
	}

	journeyService, err := plan.NewDefaultJourneyService(
		partyRepo, enquiryRepo, supplierRepo,
		utils.GetCacheClient(), bus, asynqClient,
		time.Duration(config.AppConfig.JourneyCacheTTL)*time.Second,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize journey service: %v", err)
	}

	registryService, err := registry.NewDefaultRegistryService(registryRepo, partyRepo, bus)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize registry service: %v", err)
	}

	// Background workers.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewSupplierHandler(supplierRepo),
		handlers.NewProfileHandler(profileService),
		handlers.NewPartyHandler(journeyService),
		handlers.NewEnquiryHandler(enquiryService),
		handlers.NewRegistryHandler(registryService),
	)

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
