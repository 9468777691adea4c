package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"

	"video_library_service/pkg/database"
	errprocess "video_library_service/pkg/err"
	"video_library_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SuccessRes response envelope for successful requests
type SuccessRes struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// FailureRes response envelope for failed requests
type FailureRes struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// respond write the success envelope
func respond(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(SuccessRes{
		Status:  status,
		Data:    data,
		Message: message,
	})
}

// ErrorHandler render every handler error as the failure envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := errprocess.CodeOf(err)
	message := err.Error()

	var apiErr *errprocess.APIError
	if errors.As(err, &apiErr) {
		message = apiErr.Message
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		message = fiberErr.Message
	}

	return c.Status(code).JSON(FailureRes{
		Status:  code,
		Message: message,
		Success: false,
	})
}

// formUpload open a multipart file and wrap it for the media store.
// The caller owns the returned closer.
func formUpload(header *multipart.FileHeader) (*database.FileUpload, multipart.File, error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, errprocess.Set(fmt.Sprintf("open uploaded file[%s] failed : %v", header.Filename, err))
	}
	return &database.FileUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		File:        file,
	}, file, nil
}

// HealthCheck check the service is alive
// @Summary Health check
// @Description Returns Ok when the service is up
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} SuccessRes "Ok"
// @Router /healthcheck/check [get]
func HealthCheck(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, "Ok", "Health check passed")
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging
// @Tags Healthcheck
// @Param status query bool true "Debug status"
// @Success 200 {string} string "debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /healthcheck/debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Context().QueryArgs().QueryString()))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	statusStr := query.Get("status")
	logger.Log.Info("debug", zap.String("status", statusStr))
	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	logger.Log.SetDebugMode(status)
	return c.SendString(fmt.Sprintf("debug mode is : %t", status))
}
