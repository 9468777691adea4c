package handlers

import (
	"video_library_service/internal/comment/app"
	errprocess "video_library_service/pkg/err"
	"video_library_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// CommentHandler handle video comment HTTP requests
type CommentHandler struct {
	CommentUseCase app.CommentUseCase
}

// NewCommentHandler create a new CommentHandler
func NewCommentHandler(commentUseCase app.CommentUseCase) *CommentHandler {
	return &CommentHandler{
		CommentUseCase: commentUseCase,
	}
}

// ListByVideo page through a video's comments
// @Summary List video comments
// @Description Paginated comments with owner profile and like counts
// @Tags Comments
// @Produce json
// @Param video_id path string true "Video ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} SuccessRes "Comments fetched successfully"
// @Failure 404 {object} FailureRes "Video not found"
// @Router /api/v1/comment/{video_id} [get]
func (h *CommentHandler) ListByVideo(c *fiber.Ctx) error {
	viewerID, _ := c.Locals(middlewares.TokenUserID).(string)
	comments, err := h.CommentUseCase.ListByVideo(c.UserContext(), c.Params("video_id"), viewerID,
		int64(c.QueryInt("page", 1)), int64(c.QueryInt("limit", 10)))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, comments, "Comments fetched successfully")
}

// Add create a comment on a video
// @Summary Add a comment
// @Description Attach a comment to a video
// @Tags Comments
// @Accept json
// @Produce json
// @Param video_id path string true "Video ID"
// @Success 201 {object} SuccessRes "Comment added successfully"
// @Failure 400 {object} FailureRes "Content is required"
// @Failure 404 {object} FailureRes "Video not found"
// @Router /api/v1/comment/{video_id} [post]
func (h *CommentHandler) Add(c *fiber.Ctx) error {
	content, err := commentContent(c)
	if err != nil {
		return err
	}

	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	comment, err := h.CommentUseCase.Add(c.UserContext(), c.Params("video_id"), ownerID, content)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, comment, "Comment added successfully")
}

// Update change a comment's content
// @Summary Update a comment
// @Description Owner only content edit
// @Tags Comments
// @Accept json
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} SuccessRes "Comment updated successfully"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Comment not found"
// @Router /api/v1/comment/c/{comment_id} [patch]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	content, err := commentContent(c)
	if err != nil {
		return err
	}

	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	comment, err := h.CommentUseCase.Update(c.UserContext(), c.Params("comment_id"), ownerID, content)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, comment, "Comment updated successfully")
}

// Delete remove a comment
// @Summary Delete a comment
// @Description Owner only delete
// @Tags Comments
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} SuccessRes "Comment deleted successfully"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Comment not found"
// @Router /api/v1/comment/c/{comment_id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	if err := h.CommentUseCase.Delete(c.UserContext(), c.Params("comment_id"), ownerID); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{}, "Comment deleted successfully")
}

func commentContent(c *fiber.Ctx) (string, error) {
	type request struct {
		Content string `json:"content"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return "", errprocess.SetCode(fiber.StatusBadRequest, "invalid request")
	}
	if req.Content == "" {
		return "", errprocess.SetCode(fiber.StatusBadRequest, "Content is required")
	}
	return req.Content, nil
}
