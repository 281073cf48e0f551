package route

import (
	"github.com/evandrarf/mathplay-be/internal/delivery/http/handler"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupScoreRoute(api fiber.Router, handler handler.ScoreHandler, m *middleware.Middleware) {
	api.Post("/score", handler.Save)

	router := api.Group("/scores")
	{
		router.Get("/", handler.List)
		router.Get("/export", handler.Export)
	}

	api.Get("/report", handler.Report)
}
