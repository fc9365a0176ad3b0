package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"greetsvc/internal/config"
	"greetsvc/internal/greeting"
	handlers "greetsvc/internal/http/handler"
	"greetsvc/internal/http/middleware"
	"greetsvc/internal/otel"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Initialize tracing; degrades to no-op when no collector is configured
	shutdownTracing, err := otel.Init(context.Background(), cfg.ServiceName)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	var gatherer prometheus.Gatherer
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		metrics, err := middleware.NewMetrics(reg)
		if err != nil {
			log.Fatalf("failed to register metrics: %v", err)
		}
		app.Use(metrics.Handler())
		gatherer = reg
	}

	// Register HTTP routes with the injected greeting service
	handlers.RegisterRoutes(app, greeting.NewService(), gatherer)

	addr := ":" + cfg.Port

	// A port already in use surfaces here; restart policy is the
	// orchestrator's job, not ours.
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
