package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tropicab/config"
	"tropicab/cron"
	"tropicab/database"
	bookingRepo "tropicab/database/repository/bookings"
	catalogRepo "tropicab/database/repository/catalog"
	transcriptRepo "tropicab/database/repository/transcript"
	"tropicab/handlers"
	"tropicab/routes"
	"tropicab/services/agent"
	"tropicab/services/booking"
	"tropicab/services/catalog"
	"tropicab/services/qa"
	"tropicab/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitChatContextCache()

	stripe.Key = config.AppConfig.StripeKey

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary not configured, vehicle images disabled: %v", err)
		cloudinaryStorageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	chatRepo := transcriptRepo.NewMongoTranscriptRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:   catRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	if err := catalogService.Refresh(context.Background()); err != nil {
		logger.Warn("main: catalog refresh failed, starting in estimated-pricing mode", zap.Error(err))
	}

	var qaService qa.Service
	if config.AppConfig.GeminiAPIKey != "" {
		svc, err := qa.NewGeminiService(
			config.AppConfig.GeminiAPIKey,
			time.Duration(config.AppConfig.QATimeoutSeconds)*time.Second,
		)
		if err != nil {
			logger.Warn("main: gemini unavailable, using canned answers", zap.Error(err))
		} else {
			qaService = svc
		}
	}

	scheduler := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer scheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:      bookRepo,
		Scheduler: scheduler,
		Logger:    logger,
	}

	ctxStore := agent.NewRedisContextStore(
		utils.GetChatContextClient(),
		time.Duration(config.AppConfig.ChatContextTTLMin)*time.Minute,
	)
	engine := agent.NewEngine(catalogService, qaService, cloudinaryStorageService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Engine:       engine,
		ContextStore: ctxStore,
		Transcripts:  chatRepo,
		Bookings:     bookingService,
		Catalog:      catalogService,
		Storage:      cloudinaryStorageService,
		Logger:       logger,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the pickup-reminder worker.
	cron.InitReminderWorker()

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
