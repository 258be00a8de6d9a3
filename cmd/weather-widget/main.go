package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/time/rate"

	httpapi "github.com/i474232898/weather-widget/internal/api/http"
	"github.com/i474232898/weather-widget/internal/clock"
	"github.com/i474232898/weather-widget/internal/config"
	"github.com/i474232898/weather-widget/internal/controller"
	"github.com/i474232898/weather-widget/internal/render"
	"github.com/i474232898/weather-widget/internal/scheduler"
	"github.com/i474232898/weather-widget/internal/store"
	"github.com/i474232898/weather-widget/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	catalog := weather.DefaultCatalog()

	// One jitter source shared by resolver and renderer; the controller
	// serializes access to it.
	rnd := weather.NewSource(cfg.Seed)

	resolver, err := weather.NewResolver(catalog, cfg.DefaultCity, rnd)
	if err != nil {
		log.Fatalf("failed to build resolver: %v", err)
	}

	surface := store.NewMemorySurface(cfg.MaxHistory)
	renderer := render.NewRenderer(surface, rnd)

	clk, err := clock.New(surface, cfg.Locale, cfg.Location)
	if err != nil {
		log.Fatalf("failed to build clock: %v", err)
	}

	ctrl := controller.New(resolver, renderer, clk, controller.LogNotifier)
	initial := ctrl.Start()
	log.Printf("INFO: rendered default city %s", initial.Key)

	sched := scheduler.New(clk, cfg.ClockInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-widget",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-widget",
		})
	})

	httpapi.RegisterRoutes(app, &httpapi.Widget{
		Controller:    ctrl,
		Surface:       surface,
		Catalog:       catalog,
		SearchLimiter: rate.NewLimiter(rate.Limit(cfg.SearchRPS), cfg.SearchBurst),
	})

	go func() {
		log.Printf("INFO: weather-widget listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
