package errprocess

import (
	"errors"
	"video_library_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// APIError bind an HTTP status to the error message
type APIError struct {
	Code    int
	Message string
}

// Error implement error
func (e *APIError) Error() string {
	return e.Message
}

// Set set err info
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return errors.New(errMsg)
}

// SetCode set err info with an HTTP status
func SetCode(code int, errMsg string) error {
	logger.Log.Error(errMsg)
	return &APIError{Code: code, Message: errMsg}
}

// CodeOf get the HTTP status carried by err, default 500
func CodeOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
