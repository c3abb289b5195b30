package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	domainrepo "navdb-service/internal/domain/repository"
	"navdb-service/internal/infrastructure/config"
	"navdb-service/internal/infrastructure/persistence"
	"navdb-service/internal/infrastructure/queue"
	"navdb-service/internal/interface/repository"
	"navdb-service/internal/interface/rest"
	"navdb-service/internal/usecase"
	"navdb-service/pkg/logger"
	"navdb-service/pkg/metrics"
	"navdb-service/pkg/xmlutil"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting NavDB Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection and schema
	log.Info("Connecting to PostgreSQL")
	db, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := persistence.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	// Set up repositories
	navRepo := repository.NewGormNavigationRepository(db)
	fileRepo := repository.NewGormArincFileRepository(db)

	// Set up metrics
	m := metrics.NewMetrics("navdb")

	// Set up the import pipeline
	fields := xmlutil.NewFieldExtractor(log, cfg.StrictFields)
	resolver := usecase.NewCycleResolver(navRepo, log)
	pipeline := usecase.NewImportPipeline(navRepo, fields, m, log)
	processor := usecase.NewFileProcessor(fileRepo, resolver, pipeline, m, log)

	// Set up the job queue: NATS when configured, otherwise in-process
	var fileQueue interface {
		domainrepo.FileQueue
		domainrepo.QueueConsumer
	}
	if cfg.NatsURL != "" {
		log.Info("Connecting to NATS", "url", cfg.NatsURL, "subject", cfg.NatsSubject)
		natsQueue, err := queue.NewNatsFileQueue(cfg.NatsURL, cfg.NatsSubject, log)
		if err != nil {
			log.Fatal("Failed to connect to NATS", "error", err)
		}
		fileQueue = natsQueue
	} else {
		log.Info("Using in-process file queue")
		fileQueue = queue.NewMemoryFileQueue(64, log)
	}
	if err := fileQueue.Start(ctx, processor.Process); err != nil {
		log.Fatal("Failed to start queue consumer", "error", err)
	}

	// Set up HTTP server
	handler := rest.NewHandler(fileRepo, navRepo, fileQueue, cfg.UploadDir, log)
	router := chi.NewRouter()
	handler.Routes(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the queue worker

	if err := fileQueue.Close(); err != nil {
		log.Error("Queue shutdown error", "error", err)
	}

	log.Info("NavDB Service stopped")
}
