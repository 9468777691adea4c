package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	errprocess "video_library_service/pkg/err"
	"video_library_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerEnvelope(t *testing.T) {
	logger.SetNewNop()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return errprocess.SetCode(fiber.StatusForbidden, "You are not allowed to delete this video")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errprocess.Set("aggregation failed")
	})

	t.Run("status coded error renders its code and message", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/forbidden", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

		var res FailureRes
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, fiber.StatusForbidden, res.Status)
		assert.Equal(t, "You are not allowed to delete this video", res.Message)
		assert.False(t, res.Success)
	})

	t.Run("fiber error keeps its code", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var res FailureRes
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, fiber.StatusNotFound, res.Status)
	})

	t.Run("plain error falls back to 500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var res FailureRes
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, fiber.StatusInternalServerError, res.Status)
		assert.Equal(t, "aggregation failed", res.Message)
		assert.False(t, res.Success)
	})
}
