package middlewares

import (
	"strings"

	errprocess "video_library_service/pkg/err"

	"github.com/gofiber/fiber/v2"
)

// JSONBodyLimit reject oversized JSON payloads.
// Multipart uploads are capped separately by the fiber BodyLimit.
func JSONBodyLimit(limit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentType := c.Get(fiber.HeaderContentType)
		if strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) && len(c.Body()) > limit {
			return errprocess.SetCode(fiber.StatusBadRequest, "Request body too large")
		}
		return c.Next()
	}
}
