package server

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorApp(handlerErr error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return handlerErr
	})
	return app
}

func TestErrorHandler_UnexpectedErrorStaysGeneric(t *testing.T) {
	app := errorApp(errors.New(`pq: password authentication failed for user "blogwave"`))

	req, err := http.NewRequest(http.MethodGet, "/boom", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Internal server error")
	assert.NotContains(t, string(raw), "pq:")
	assert.NotContains(t, string(raw), "password")
}

func TestErrorHandler_FiberErrorKeepsStatus(t *testing.T) {
	app := errorApp(fiber.ErrNotFound)

	req, err := http.NewRequest(http.MethodGet, "/boom", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
