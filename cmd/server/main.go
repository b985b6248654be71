package main

import (
	"alcyxob/training-diary/internal/api"
	"alcyxob/training-diary/internal/cache"
	"alcyxob/training-diary/internal/config"
	"alcyxob/training-diary/internal/logging"
	"alcyxob/training-diary/internal/metrics"
	"alcyxob/training-diary/internal/repository/mongo"
	"alcyxob/training-diary/internal/service"
	"alcyxob/training-diary/internal/storage"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// @title Training Diary API
// @version 1.0
// @description Coaches publish trainings and schedule them for athletes; athletes keep a diary of how they went.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	configPath := flag.String("config", ".", "directory holding config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logCloser := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	defer logCloser.Close()
	log.Infoln("starting training diary server")

	loc, err := time.LoadLocation(cfg.Calendar.Location)
	if err != nil {
		log.Fatalf("invalid calendar location %q: %s", cfg.Calendar.Location, err)
	}

	// --- Database Connection ---
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	dbClient, err := mongo.ConnectDB(connectCtx, cfg.Database.URI)
	cancelConnect()
	if err != nil {
		log.Fatalf("could not connect to mongodb: %s", err)
	}
	appDB := dbClient.Database(cfg.Database.Name)
	log.Infof("connected to database %s", cfg.Database.Name)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), time.Minute)
	if err := mongo.EnsureIndexes(indexCtx, appDB); err != nil {
		log.Errorf("ensure indexes: %s", err)
	}
	cancelIndexes()

	// --- Storage and Cache ---
	fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3)
	if err != nil {
		log.Fatalf("failed to initialize s3 storage: %s", err)
	}
	trainingCache := cache.NewTrainingCache(cfg.Cache.SizeBytes, cfg.Cache.TTL)

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, registry)

	// --- Repositories and Services ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	trainingRepo := mongo.NewMongoTrainingRepository(appDB)
	scheduleRepo := mongo.NewMongoScheduledTrainingRepository(appDB)
	diaryRepo := mongo.NewMongoDiaryEntryRepository(appDB)

	opts := []service.Option{
		service.WithLocation(loc),
		service.WithLookback(cfg.Diary.Lookback),
		service.WithMetrics(metricsManager),
	}
	catalogService := service.NewCatalogService(trainingRepo, userRepo, fileStorage, trainingCache, opts...)

	router := gin.New()
	api.SetupRoutes(router, api.RouteParams{
		JWTSecret:  cfg.JWT.Secret,
		Metrics:    metricsManager,
		Gatherer:   registry,
		Catalog:    catalogService,
		Scheduler:  service.NewSchedulerService(scheduleRepo, userRepo, catalogService, opts...),
		Diary:      service.NewDiaryService(scheduleRepo, diaryRepo, opts...),
		Coach:      service.NewCoachService(userRepo, diaryRepo),
		Statistics: service.NewStatisticsService(diaryRepo, userRepo, opts...),
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infoln("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	shutdownErr := multierr.Combine(
		server.Shutdown(ctxShutdown),
		mongo.DisconnectDB(dbClient),
	)
	if shutdownErr != nil {
		log.Errorf("unclean shutdown: %s", shutdownErr)
	}
	log.Infoln("server exited")
}
