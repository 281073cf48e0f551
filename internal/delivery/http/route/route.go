package route

import (
	"github.com/evandrarf/mathplay-be/internal/delivery/http/handler"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/middleware"
	"github.com/evandrarf/mathplay-be/internal/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api             *fiber.App
	Middleware      *middleware.Middleware
	Metrics         *metrics.Metrics
	GameHandler     handler.GameHandler
	ScoreHandler    handler.ScoreHandler
	FeedbackHandler handler.FeedbackHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	if c.Metrics != nil {
		c.Api.Get("/metrics", adaptor.HTTPHandler(c.Metrics.Handler()))
	}

	api := c.Api.Group("/api")
	api.Get("/status", handler.Status)

	SetupGameRoute(api, c.GameHandler, c.Middleware)
	SetupScoreRoute(api, c.ScoreHandler, c.Middleware)
	SetupFeedbackRoute(api, c.FeedbackHandler, c.Middleware)
}
