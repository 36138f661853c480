package router

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	apiv1 "github.com/treescount/treedash/internal/api/v1"
	"github.com/treescount/treedash/internal/pkg/cache"
	"github.com/treescount/treedash/internal/pkg/env"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiterConfig()))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer()
	apiv1.RegisterHandlers(v1, apiServer)
}

// limiterConfig backs the rate limiter with Redis when it is reachable so
// counters survive restarts; otherwise the limiter keeps its in-memory store.
func limiterConfig() limiter.Config {
	// Every dropdown change fires two chart requests, so the default
	// 5/minute would throttle normal use.
	cfg := limiter.Config{Max: 120}
	if !cache.Available() {
		return cfg
	}

	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	cfg.Storage = redisstorage.New(redisstorage.Config{
		Host: env.GetEnv("CACHE_HOST", "localhost"),
		Port: port,
	})
	return cfg
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
