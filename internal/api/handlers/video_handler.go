package handlers

import (
	"video_library_service/internal/video/app"
	"video_library_service/internal/video/domain"
	errprocess "video_library_service/pkg/err"
	"video_library_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// VideoHandler handle video HTTP requests
type VideoHandler struct {
	VideoUseCase app.VideoUseCase
}

// NewVideoHandler create a new VideoHandler
func NewVideoHandler(videoUseCase app.VideoUseCase) *VideoHandler {
	return &VideoHandler{
		VideoUseCase: videoUseCase,
	}
}

// List search published videos
// @Summary List videos
// @Description Paginated published video listing with text search and sorting
// @Tags Videos
// @Produce json
// @Param query query string false "Search keyword"
// @Param sortBy query string false "Sort field"
// @Param sortType query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} SuccessRes "Videos fetched successfully"
// @Router /api/v1/video [get]
func (h *VideoHandler) List(c *fiber.Ctx) error {
	q := domain.ListQuery{
		Query:    c.Query("query"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		Page:     int64(c.QueryInt("page", 1)),
		Limit:    int64(c.QueryInt("limit", 10)),
	}

	videos, err := h.VideoUseCase.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, videos, "Videos fetched successfully")
}

// Publish upload a new video with its thumbnail
// @Summary Publish a video
// @Description Store the video and thumbnail then create the record
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Video title"
// @Param description formData string true "Video description"
// @Param videoFile formData file true "Video file"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 201 {object} SuccessRes "Video published successfully"
// @Failure 400 {object} FailureRes "Missing fields"
// @Router /api/v1/video [post]
func (h *VideoHandler) Publish(c *fiber.Ctx) error {
	title := c.FormValue("title")
	description := c.FormValue("description")
	if title == "" || description == "" {
		return errprocess.SetCode(fiber.StatusBadRequest, "Title and description are required")
	}

	videoHeader, err := c.FormFile("videoFile")
	if err != nil {
		return errprocess.SetCode(fiber.StatusBadRequest, "Video file is required")
	}
	videoUpload, videoFile, err := formUpload(videoHeader)
	if err != nil {
		return err
	}
	defer videoFile.Close()

	thumbHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return errprocess.SetCode(fiber.StatusBadRequest, "Thumbnail file is required")
	}
	thumbUpload, thumbFile, err := formUpload(thumbHeader)
	if err != nil {
		return err
	}
	defer thumbFile.Close()

	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	video, err := h.VideoUseCase.Publish(c.UserContext(), ownerID, domain.PublishReq{
		Title:       title,
		Description: description,
		VideoFile:   *videoUpload,
		Thumbnail:   *thumbUpload,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, video, "Video published successfully")
}

// Get return one video with owner, likes and view count bump
// @Summary Get a video
// @Description Video detail, increments views and records watch history
// @Tags Videos
// @Produce json
// @Param video_id path string true "Video ID"
// @Success 200 {object} SuccessRes "Video fetched successfully"
// @Failure 404 {object} FailureRes "Video not found"
// @Router /api/v1/video/{video_id} [get]
func (h *VideoHandler) Get(c *fiber.Ctx) error {
	viewerID, _ := c.Locals(middlewares.TokenUserID).(string)
	video, err := h.VideoUseCase.Get(c.UserContext(), c.Params("video_id"), viewerID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, video, "Video fetched successfully")
}

// Update change title, description or thumbnail
// @Summary Update a video
// @Description Owner only, replaces the thumbnail when a new one is sent
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param video_id path string true "Video ID"
// @Param title formData string false "New title"
// @Param description formData string false "New description"
// @Param thumbnail formData file false "New thumbnail"
// @Success 200 {object} SuccessRes "Video updated successfully"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Video not found"
// @Router /api/v1/video/{video_id} [patch]
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	req := domain.UpdateReq{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}
	if thumbHeader, err := c.FormFile("thumbnail"); err == nil {
		thumbUpload, thumbFile, err := formUpload(thumbHeader)
		if err != nil {
			return err
		}
		defer thumbFile.Close()
		req.Thumbnail = thumbUpload
	}

	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	video, err := h.VideoUseCase.Update(c.UserContext(), c.Params("video_id"), ownerID, req)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, video, "Video updated successfully")
}

// Delete remove a video and its stored media
// @Summary Delete a video
// @Description Owner only, removes the record and the stored files
// @Tags Videos
// @Produce json
// @Param video_id path string true "Video ID"
// @Success 200 {object} SuccessRes "Video deleted successfully"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Video not found"
// @Router /api/v1/video/{video_id} [delete]
func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	if err := h.VideoUseCase.Delete(c.UserContext(), c.Params("video_id"), ownerID); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{}, "Video deleted successfully")
}

// TogglePublish flip the publish state
// @Summary Toggle publish status
// @Description Owner only, flips is_published
// @Tags Videos
// @Produce json
// @Param video_id path string true "Video ID"
// @Success 200 {object} SuccessRes "Publish status toggled"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Video not found"
// @Router /api/v1/video/toggle/publish/{video_id} [patch]
func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	video, err := h.VideoUseCase.TogglePublish(c.UserContext(), c.Params("video_id"), ownerID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, video, "Publish status toggled")
}

// ByChannel list a channel's videos
// @Summary List channel videos
// @Description Videos owned by the channel, newest first
// @Tags Videos
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} SuccessRes "Channel videos fetched successfully"
// @Failure 404 {object} FailureRes "Channel does not exist"
// @Router /api/v1/video/c/{username} [get]
func (h *VideoHandler) ByChannel(c *fiber.Ctx) error {
	videos, err := h.VideoUseCase.ByChannel(c.UserContext(), c.Params("username"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, videos, "Channel videos fetched successfully")
}
