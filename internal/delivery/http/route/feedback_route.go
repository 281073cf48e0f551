package route

import (
	"github.com/evandrarf/mathplay-be/internal/delivery/http/handler"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupFeedbackRoute(api fiber.Router, handler handler.FeedbackHandler, m *middleware.Middleware) {
	api.Post("/feedback", handler.Save)
	api.Post("/cartoon-feedback", handler.SaveCartoon)
}
