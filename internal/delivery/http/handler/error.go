package handler

import (
	"errors"

	"github.com/evandrarf/mathplay-be/internal/delivery/http/usecase"
	"github.com/evandrarf/mathplay-be/internal/game"
	"github.com/gofiber/fiber/v2"
)

// gameError maps usecase and session errors onto HTTP errors. Anything it
// doesn't recognise is passed through and ends up as a 500.
func gameError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrTopicNotFound),
		errors.Is(err, game.ErrSessionClosed):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrLocked):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, game.ErrNotInteractive),
		errors.Is(err, game.ErrMarkOutOfRange):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
