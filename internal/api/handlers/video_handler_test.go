package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"video_library_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestVideoHandler_PublishValidation(t *testing.T) {
	logger.SetNewNop()

	// validation rejects the request before the usecase is reached
	h := &VideoHandler{}
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/video", h.Publish)

	t.Run("missing description", func(t *testing.T) {
		body, contentType := multipartForm(t, map[string]string{"title": "My first video"})
		req := httptest.NewRequest(fiber.MethodPost, "/video", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var res FailureRes
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "Title and description are required", res.Message)
	})

	t.Run("missing title", func(t *testing.T) {
		body, contentType := multipartForm(t, map[string]string{"description": "about nothing"})
		req := httptest.NewRequest(fiber.MethodPost, "/video", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing video file", func(t *testing.T) {
		body, contentType := multipartForm(t, map[string]string{
			"title":       "My first video",
			"description": "about nothing",
		})
		req := httptest.NewRequest(fiber.MethodPost, "/video", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var res FailureRes
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "Video file is required", res.Message)
	})
}
