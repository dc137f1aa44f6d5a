package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/parts-pile/fitment/config"
	h "github.com/parts-pile/fitment/handlers"
	"github.com/parts-pile/fitment/marketplace"
)

func main() {
	cfg := config.Load()
	if cfg.APIToken == "" {
		log.Printf("[main] FITMENT_API_TOKEN is not set; lookups will be rejected with 401")
	}

	client := marketplace.New(cfg)
	handler := h.New(cfg, client)

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
	})

	// Add rate limiter
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitExp,
	}))

	// Allow embedding pages to call the API cross-origin
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
	}))

	// Add logger middleware
	app.Use(logger.New())

	// Static files
	app.Static("/", "./static")

	// Search page and its htmx partials
	app.Get("/", handler.HandleHome)
	app.Post("/search", handler.HandleSearch)
	app.Post("/search/makes", handler.HandleSearchMakes)
	app.Post("/search/models", handler.HandleSearchModels)

	// Compatibility API
	api := app.Group("/api")
	api.Post("/get-compatibilities", handler.HandleGetCompatibilities)
	api.Post("/get-makes", handler.HandleGetMakes)
	api.Post("/get-models", handler.HandleGetModels)

	// Health check
	app.Get("/health", h.HandleHealth)

	fmt.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
