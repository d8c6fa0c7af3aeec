// @title           Sticky Board Service API
// @version         1.0
// @description     실시간 스티키 노트 보드 API

// @host      localhost:3001
// @BasePath  /api

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "sticky-board-api/docs" // Swagger docs import

	"sticky-board-api/internal/bus"
	"sticky-board-api/internal/cache"
	"sticky-board-api/internal/config"
	"sticky-board-api/internal/database"
	"sticky-board-api/internal/job"
	"sticky-board-api/internal/metrics"
	"sticky-board-api/internal/middleware"
	"sticky-board-api/internal/realtime"
	"sticky-board-api/internal/repository"
	"sticky-board-api/internal/router"
	"sticky-board-api/internal/service"
)

const (
	migrationRetries        = 5
	dbStatsInterval         = 15 * time.Second
	businessMetricsSchedule = "@every 30s"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Sticky Board Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Bool("presence_via_bus", cfg.Realtime.BroadcastPresenceViaBus),
	)

	// Initialize metrics
	m := metrics.New(logger)

	// Initialize database
	db, err := database.New(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	if err := database.AutoMigrateWithRetry(db, logger, migrationRetries); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	stopDBStats := database.StartDBStatsCollector(db, m, dbStatsInterval)

	// Initialize Redis; without it cache and bus stay in process
	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	var store cache.Store
	var changeBus bus.Bus
	var memoryBus *bus.MemoryBus
	if redisClient != nil {
		store = cache.NewRedisStore(redisClient)
		changeBus = bus.NewRedisBus(redisClient, cfg.Realtime.ResubscribeBackoff, m, logger)
	} else {
		store = cache.NewMemoryStore()
		memoryBus = bus.NewMemoryBus(m, logger)
		changeBus = memoryBus
	}

	// Repositories
	boardRepo := repository.NewBoardRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	presenceRepo := repository.NewPresenceRepository(db)

	// Services
	boardCache := cache.NewBoardCache(store, boardRepo, noteRepo, cfg.Cache, m, logger)
	publisher := service.NewEventPublisher(changeBus, cfg.Realtime.ChannelPrefix, logger)
	window := cfg.Presence.InactivityWindow

	boardService := service.NewBoardService(boardRepo, participantRepo, presenceRepo, boardCache, nil, window, m, logger)
	noteService := service.NewNoteService(noteRepo, boardRepo, boardCache, publisher, m, logger)
	participantService := service.NewParticipantService(participantRepo, logger)
	presenceService := service.NewPresenceService(presenceRepo, boardCache, window, logger)

	// Realtime
	origins := middleware.ParseOrigins(cfg.CORS.AllowedOrigins)
	hub := realtime.NewHub()
	gateway := realtime.NewGateway(hub, presenceService, noteService, publisher, cfg.Realtime, origins, m, logger)
	relay := realtime.NewRelay(changeBus, hub, cfg.Realtime.ChannelPrefix, cfg.Realtime.BroadcastPresenceViaBus, logger)

	relayCtx, stopRelay := context.WithCancel(context.Background())
	if err := relay.Start(relayCtx); err != nil {
		logger.Fatal("Failed to subscribe to board events", zap.Error(err))
	}

	// Background jobs
	scheduler := job.NewScheduler(logger)
	if err := scheduler.Add("presence-sweep", cfg.Presence.SweepSchedule, job.NewPresenceSweepJob(presenceService, m, logger)); err != nil {
		logger.Fatal("Failed to schedule presence sweep", zap.Error(err))
	}
	collector := metrics.NewBusinessMetricsCollector(db, m, window, logger)
	if err := scheduler.AddFunc("business-metrics", businessMetricsSchedule, collector.Collect); err != nil {
		logger.Warn("Failed to schedule business metrics", zap.Error(err))
	}
	scheduler.Start()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:                 db,
		Redis:              redisClient,
		Logger:             logger,
		Metrics:            m,
		BasePath:           cfg.Server.BasePath,
		CORSOrigins:        origins,
		BoardService:       boardService,
		NoteService:        noteService,
		ParticipantService: participantService,
		PresenceService:    presenceService,
		Gateway:            gateway,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Sticky Board Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Live connections first, so their presence is released while the store is still open
	if err := gateway.Shutdown(ctx); err != nil {
		logger.Warn("Timed out closing live connections", zap.Error(err))
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	scheduler.Stop(ctx)
	stopRelay()
	if memoryBus != nil {
		memoryBus.Close()
	}
	select {
	case <-relay.Done():
	case <-ctx.Done():
	}
	close(stopDBStats)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis", zap.Error(err))
		}
	}
	if err := database.Close(db); err != nil {
		logger.Warn("Failed to close database", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
