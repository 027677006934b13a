package app

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	slogfiber "github.com/samber/slog-fiber"

	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Gate bundles the capability middleware every delivery registers its routes
// with. Each route names its requirement explicitly; nothing is gated by
// accident of registration order.
type Gate struct {
	Auth         fiber.Handler
	OptionalAuth fiber.Handler
	Admin        fiber.Handler
	Instructor   fiber.Handler
}

// Delivery is a feature slice that can attach its routes.
type Delivery interface {
	AddHandlers(router fiber.Router, gate Gate)
}

type FiberApp struct {
	app    *fiber.App
	config WebConfig
}

func NewFiberApp(config WebConfig, gate Gate, statisticsMW fiber.Handler, logger *slog.Logger, health HealthChecker, deliveries ...Delivery) *FiberApp {
	app := fiber.New(fiber.Config{
		AppName:      "camp-enroll",
		ErrorHandler: newErrorHandler(logger),
	})

	app.Use(slogfiber.New(logger))
	app.Use(statisticsMW)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("camp-enroll api is running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := health.HealthCheck(c.Context()); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	for _, d := range deliveries {
		d.AddHandlers(app, gate)
	}

	return &FiberApp{
		app:    app,
		config: config,
	}
}

func (a *FiberApp) Start() error {
	return a.app.Listen(a.config.Host + ":" + a.config.Port)
}

func (a *FiberApp) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber instance for tests.
func (a *FiberApp) App() *fiber.App {
	return a.app
}

// newErrorHandler renders every handler error through the one error
// envelope. 5xx responses are reported to sentry; the client only sees the
// generic message.
func newErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if fiberErr, ok := err.(*fiber.Error); ok {
			return c.Status(fiberErr.Code).JSON(map[string]any{"error": map[string]any{
				"code":    fiberErr.Code,
				"message": fiberErr.Message,
			}})
		}

		status := pkgErrors.Status(err)
		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()),
			)
			sentry.CaptureException(err)
		}

		return c.Status(status).JSON(pkgErrors.Envelope(err))
	}
}
