package middleware

import "github.com/gofiber/fiber/v2"

// NoStore marks responses as uncacheable; game state changes on timers.
func (m *Middleware) NoStore() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderCacheControl, "no-store")
		return ctx.Next()
	}
}
