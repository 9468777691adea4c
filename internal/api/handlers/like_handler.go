package handlers

import (
	"video_library_service/internal/like/app"
	"video_library_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// LikeHandler handle like toggle HTTP requests
type LikeHandler struct {
	LikeUseCase app.LikeUseCase
}

// NewLikeHandler create a new LikeHandler
func NewLikeHandler(likeUseCase app.LikeUseCase) *LikeHandler {
	return &LikeHandler{
		LikeUseCase: likeUseCase,
	}
}

// ToggleVideo flip the like on a video
// @Summary Toggle video like
// @Description Like or unlike a video, returns the new state
// @Tags Likes
// @Produce json
// @Param video_id path string true "Video ID"
// @Success 200 {object} SuccessRes "Like toggled"
// @Router /api/v1/like/toggle/v/{video_id} [post]
func (h *LikeHandler) ToggleVideo(c *fiber.Ctx) error {
	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	res, err := h.LikeUseCase.ToggleVideo(c.UserContext(), userID, c.Params("video_id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, res, "Like toggled")
}

// ToggleComment flip the like on a comment
// @Summary Toggle comment like
// @Description Like or unlike a comment, returns the new state
// @Tags Likes
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} SuccessRes "Like toggled"
// @Router /api/v1/like/toggle/c/{comment_id} [post]
func (h *LikeHandler) ToggleComment(c *fiber.Ctx) error {
	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	res, err := h.LikeUseCase.ToggleComment(c.UserContext(), userID, c.Params("comment_id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, res, "Like toggled")
}

// ToggleTweet flip the like on a tweet
// @Summary Toggle tweet like
// @Description Like or unlike a tweet, returns the new state
// @Tags Likes
// @Produce json
// @Param tweet_id path string true "Tweet ID"
// @Success 200 {object} SuccessRes "Like toggled"
// @Router /api/v1/like/toggle/t/{tweet_id} [post]
func (h *LikeHandler) ToggleTweet(c *fiber.Ctx) error {
	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	res, err := h.LikeUseCase.ToggleTweet(c.UserContext(), userID, c.Params("tweet_id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, res, "Like toggled")
}

// LikedVideos list the requester's liked videos
// @Summary List liked videos
// @Description Videos the requester has liked, with owner profiles
// @Tags Likes
// @Produce json
// @Success 200 {object} SuccessRes "Liked videos fetched successfully"
// @Router /api/v1/like/videos [get]
func (h *LikeHandler) LikedVideos(c *fiber.Ctx) error {
	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	videos, err := h.LikeUseCase.LikedVideos(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, videos, "Liked videos fetched successfully")
}
