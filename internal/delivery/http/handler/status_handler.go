package handler

import (
	"github.com/evandrarf/mathplay-be/internal/delivery/http/domain"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/gofiber/fiber/v2"
)

// Status is the liveness probe. Its body keeps the shape older clients
// expect, so it skips the response envelope.
func Status(ctx *fiber.Ctx) error {
	return ctx.JSON(entity.StatusResponse{
		Status:  "active",
		Message: domain.STATUS_SUCCESS,
	})
}
