package handler

import (
	"os"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"greetsvc/internal/greeting"
)

// Greeting serves the root route. The body is the fixed greeting, served as
// plain text with status 200.
func Greeting(svc greeting.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("txt", "utf-8")
		return c.SendString(svc.Greet())
	}
}

// LivenessProbe is the bare liveness endpoint the Deployment's livenessProbe
// points at. It answers as long as the process accepts connections.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// HealthCheck is the readiness endpoint. The service has no dependencies to
// probe, so readiness reduces to "the process is serving"; the hostname (the
// pod name under the orchestrator) identifies which replica answered.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"hostname": hostname,
		})
	}
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// gatherer may be nil, in which case /metrics is not registered.
func RegisterRoutes(app *fiber.App, svc greeting.Service, gatherer prometheus.Gatherer) {
	app.Get("/", Greeting(svc))
	app.Get("/healthz", LivenessProbe())
	app.Get("/health", HealthCheck())

	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		))
	}
}
