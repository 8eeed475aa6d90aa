package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/tair/drinkspot-pos/docs"
	checkouthttp "github.com/tair/drinkspot-pos/internal/checkout/delivery/http"
	"github.com/tair/drinkspot-pos/internal/config"
	"github.com/tair/drinkspot-pos/internal/pos"
	"github.com/tair/drinkspot-pos/kafka"
	"github.com/tair/drinkspot-pos/pkg/database"
	"github.com/tair/drinkspot-pos/pkg/logger"
	"github.com/tair/drinkspot-pos/pkg/store"
	"github.com/tair/drinkspot-pos/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("store_driver", cfg.StoreDriver).
		Msg("Starting POS engine")

	// Initialize tracing
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Select the blob store backend
	blobStore, cleanup, err := buildStore(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize store")
	}
	if cleanup != nil {
		defer cleanup()
	}

	// Kafka publisher is optional; without brokers sales are only logged
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer publisher.Close()
	}

	// Initialize handlers with Wire DI
	app, err := pos.InitializeApp(context.Background(), cfg, blobStore, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := startHTTPServer(app, cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

func buildStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverRedis:
		rs, err := store.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { rs.Close() }, nil

	case config.StoreDriverPostgres:
		db, err := database.NewGormConnection(database.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			return nil, nil, err
		}
		gs, err := store.NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return gs, cleanup, nil

	default:
		return store.NewMemoryStore(), nil, nil
	}
}

func startHTTPServer(app *pos.App, port string) *http.Server {
	router := mux.NewRouter()

	// Request middlewares (recovery, timeout, logging, request id)
	checkouthttp.RegisterMiddlewares(router, checkouthttp.DefaultMiddlewareConfig())

	// Register routes
	app.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"POS engine is healthy"}`))
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	checkouthttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	corsHandler := checkouthttp.SetupCORS(checkouthttp.DefaultMiddlewareConfig())

	// Trace inbound requests
	handler := otelhttp.NewHandler(corsHandler(router), "pos-http")

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", port).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	return server
}
