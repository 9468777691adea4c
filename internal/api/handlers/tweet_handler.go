package handlers

import (
	"video_library_service/internal/tweet/app"
	errprocess "video_library_service/pkg/err"
	"video_library_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// TweetHandler handle tweet HTTP requests
type TweetHandler struct {
	TweetUseCase app.TweetUseCase
}

// NewTweetHandler create a new TweetHandler
func NewTweetHandler(tweetUseCase app.TweetUseCase) *TweetHandler {
	return &TweetHandler{
		TweetUseCase: tweetUseCase,
	}
}

// Create post a new tweet
// @Summary Create a tweet
// @Description Post a short text update on the channel
// @Tags Tweets
// @Accept json
// @Produce json
// @Success 201 {object} SuccessRes "Tweet created successfully"
// @Failure 400 {object} FailureRes "Content is required"
// @Router /api/v1/tweet [post]
func (h *TweetHandler) Create(c *fiber.Ctx) error {
	content, err := tweetContent(c)
	if err != nil {
		return err
	}

	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	tweet, err := h.TweetUseCase.Create(c.UserContext(), ownerID, content)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, tweet, "Tweet created successfully")
}

// ListByUser list a user's tweets with like counts
// @Summary List user tweets
// @Description Tweets of a user, newest first
// @Tags Tweets
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} SuccessRes "Tweets fetched successfully"
// @Router /api/v1/tweet/user/{user_id} [get]
func (h *TweetHandler) ListByUser(c *fiber.Ctx) error {
	viewerID, _ := c.Locals(middlewares.TokenUserID).(string)
	tweets, err := h.TweetUseCase.ListByUser(c.UserContext(), c.Params("user_id"), viewerID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, tweets, "Tweets fetched successfully")
}

// Update change a tweet's content
// @Summary Update a tweet
// @Description Owner only content edit
// @Tags Tweets
// @Accept json
// @Produce json
// @Param tweet_id path string true "Tweet ID"
// @Success 200 {object} SuccessRes "Tweet updated successfully"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Tweet not found"
// @Router /api/v1/tweet/{tweet_id} [patch]
func (h *TweetHandler) Update(c *fiber.Ctx) error {
	content, err := tweetContent(c)
	if err != nil {
		return err
	}

	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	tweet, err := h.TweetUseCase.Update(c.UserContext(), c.Params("tweet_id"), ownerID, content)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, tweet, "Tweet updated successfully")
}

// Delete remove a tweet
// @Summary Delete a tweet
// @Description Owner only delete
// @Tags Tweets
// @Produce json
// @Param tweet_id path string true "Tweet ID"
// @Success 200 {object} SuccessRes "Tweet deleted successfully"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Tweet not found"
// @Router /api/v1/tweet/{tweet_id} [delete]
func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	if err := h.TweetUseCase.Delete(c.UserContext(), c.Params("tweet_id"), ownerID); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{}, "Tweet deleted successfully")
}

func tweetContent(c *fiber.Ctx) (string, error) {
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
