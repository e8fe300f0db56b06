package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonadmin/config"
	"salonadmin/cron"
	"salonadmin/database"
	adminRepo "salonadmin/database/repository/admin"
	auditRepo "salonadmin/database/repository/audit"
	bookingRepo "salonadmin/database/repository/booking"
	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/handlers"
	"salonadmin/models"
	"salonadmin/routes"
	"salonadmin/services/admin"
	"salonadmin/services/auth"
	"salonadmin/services/booking"
	"salonadmin/services/notification"
	"salonadmin/services/tasks"
	"salonadmin/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// openStore picks the kv backend named by STORAGE_DRIVER.
func openStore(logger *zap.Logger) kvRepo.Store {
	switch config.AppConfig.StorageDriver {
	case config.StorageRedis:
		client, err := utils.GetStoreClient()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize redis store: %v", err)
		}
		return kvRepo.NewRedisStore(client)
	case config.StorageMongo:
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: failed to initialize mongo store: %v", err)
		}
		store, err := kvRepo.NewMongoStore(database.Database())
		if err != nil {
			logger.Sugar().Fatalf("main: failed to prepare mongo store: %v", err)
		}
		return store
	case config.StorageMemory, "":
		logger.Warn("Using in-memory storage; data is lost on restart")
		return kvRepo.NewMemoryStore()
	default:
		logger.Sugar().Fatalf("main: unknown STORAGE_DRIVER %q", config.AppConfig.StorageDriver)
		return nil
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store := openStore(logger)
	utils.StartHealthMonitor(ctx, config.AppConfig.StorageDriver, store, 30*time.Second)

	// repositories.
	bookings := bookingRepo.NewKVBookingRepo(store)
	configs := adminRepo.NewKVAdminConfigRepo(store)
	audit := auditRepo.NewKVAuditRepo(store)

	// audit trail: through the queue when enabled, otherwise inline.
	var recorder tasks.AuditRecorder = &tasks.InlineRecorder{Repo: audit}
	if config.AppConfig.AuditQueue {
		client := asynq.NewClient(cron.RedisOpt())
		defer client.Close()
		recorder = &tasks.QueueRecorder{Client: client}

		stopWorker := cron.InitAuditWorker(audit, logger)
		defer stopWorker()
	}

	// services.
	bookingService := booking.NewBookingService(bookings, recorder, logger)
	adminService := &admin.DefaultAdminService{
		Bookings: bookings,
		Configs:  configs,
		Audit:    audit,
		Admins: models.AdminConfig{
			AdminManicure: config.AppConfig.AdminManicure,
			AdminOther:    config.AppConfig.AdminOther,
			AdminAll:      config.AppConfig.AdminAll,
		},
		Logger: logger,
	}
	if config.AppConfig.SeedMockData {
		if _, err := adminService.SeedMockData(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to seed mock data: %v", err)
		}
	}
	if _, err := bookingService.Load(ctx); err != nil {
		logger.Warn("Initial booking load failed; the admin view will retry", zap.Error(err))
	}

	handlerBundle := handlers.NewHandlerBundle(handlers.Dependencies{
		Store:           store,
		Configs:         configs,
		Checker:         auth.NewChecker(configs, logger),
		Bookings:        bookingService,
		Admin:           adminService,
		Banners:         notification.NewBannerService(store, config.BannerTTL()),
		BannerTTL:       config.BannerTTL(),
		SessionTTL:      config.SessionTTL(),
		Logger:          logger,
		LoginRatePerMin: config.AppConfig.MaxRequestsPerMin,
	})

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: failed to close mongo client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
