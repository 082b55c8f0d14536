package http

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kwawicks/kwawicks-api/pkg/logger"
)

// AppOptions configures NewApp.
type AppOptions struct {
	Name        string
	CORSOrigins []string
	// SwaggerFile is served on /docs when the file exists.
	SwaggerFile string
	Log         *logger.Logger
	// Registry receives the HTTP metrics and is exposed on /metrics. Nil disables both.
	Registry *prometheus.Registry
	Routes   RouterDeps
}

// NewApp builds the fiber app with the middleware stack and every route.
func NewApp(opts AppOptions) *fiber.App {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	if opts.Routes.Log == nil {
		opts.Routes.Log = log
	}

	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.Registry != nil {
		app.Use(NewMetrics(opts.Registry).Middleware())
	}
	app.Use(RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(opts.CORSOrigins, ","),
		AllowHeaders: "*",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
	}))

	if opts.SwaggerFile != "" {
		if _, err := os.Stat(opts.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: opts.SwaggerFile,
				Path:     "docs",
				Title:    "KwaWicks API",
			}))
		} else {
			log.Warn().Str("file", opts.SwaggerFile).Msg("swagger file not found, /docs disabled")
		}
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON("KwaWicks API is running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON("ok")
	})
	if opts.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	Router(app, opts.Routes)
	return app
}
