package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	config := viper.New()
	config.Set("api.cors.origins", "https://mathplay.example")

	m := NewMiddleware(&MiddlewareConfig{Config: config})
	app := fiber.New()
	app.Use(m.CorsMiddleware())
	app.Get("/", func(ctx *fiber.Ctx) error { return ctx.SendString("ok") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://mathplay.example")
	res, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, "https://mathplay.example", res.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Contains(t, res.Header.Get(fiber.HeaderAccessControlExposeHeaders), "Content-Disposition")
}

func TestNoStore(t *testing.T) {
	m := NewMiddleware(nil)
	require.NotNil(t, m.Log)

	app := fiber.New()
	app.Get("/", m.NoStore(), func(ctx *fiber.Ctx) error { return ctx.SendString("ok") })

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "no-store", res.Header.Get(fiber.HeaderCacheControl))
}
