package route

import (
	"github.com/evandrarf/mathplay-be/internal/delivery/http/handler"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupGameRoute(api fiber.Router, handler handler.GameHandler, m *middleware.Middleware) {
	api.Get("/topics", handler.Topics)

	questionRouter := api.Group("/questions")
	{
		questionRouter.Get("/generate", handler.Generate)
	}

	router := api.Group("/games", m.NoStore())
	{
		router.Post("/", handler.Start)
		router.Get("/:id", handler.Get)
		router.Post("/:id/answer", handler.SubmitAnswer)
		router.Post("/:id/tap", handler.Tap)
		router.Put("/:id/difficulty", handler.ChangeDifficulty)
		router.Put("/:id/topic", handler.ChangeTopic)
		router.Delete("/:id", handler.End)
	}
}
