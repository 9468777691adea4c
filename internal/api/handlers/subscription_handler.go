package handlers

import (
	"video_library_service/internal/subscription/app"
	"video_library_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// SubscriptionHandler handle channel subscription HTTP requests
type SubscriptionHandler struct {
	SubscriptionUseCase app.SubscriptionUseCase
}

// NewSubscriptionHandler create a new SubscriptionHandler
func NewSubscriptionHandler(subscriptionUseCase app.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{
		SubscriptionUseCase: subscriptionUseCase,
	}
}

// Toggle flip the subscription to a channel
// @Summary Toggle subscription
// @Description Subscribe or unsubscribe, returns the new state
// @Tags Subscriptions
// @Produce json
// @Param channel_id path string true "Channel user ID"
// @Success 200 {object} SuccessRes "Subscription toggled"
// @Router /api/v1/subscription/c/{channel_id} [post]
func (h *SubscriptionHandler) Toggle(c *fiber.Ctx) error {
	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	res, err := h.SubscriptionUseCase.Toggle(c.UserContext(), userID, c.Params("channel_id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, res, "Subscription toggled")
}

// Subscribers list a channel's subscriber profiles
// @Summary List channel subscribers
// @Description Profiles of users subscribed to the channel
// @Tags Subscriptions
// @Produce json
// @Param channel_id path string true "Channel user ID"
// @Success 200 {object} SuccessRes "Subscribers fetched successfully"
// @Router /api/v1/subscription/c/{channel_id} [get]
func (h *SubscriptionHandler) Subscribers(c *fiber.Ctx) error {
	profiles, err := h.SubscriptionUseCase.ChannelSubscribers(c.UserContext(), c.Params("channel_id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, profiles, "Subscribers fetched successfully")
}

// Channels list the channels a user subscribes to
// @Summary List subscribed channels
// @Description Profiles of channels the user is subscribed to
// @Tags Subscriptions
// @Produce json
// @Param subscriber_id path string true "Subscriber user ID"
// @Success 200 {object} SuccessRes "Subscribed channels fetched successfully"
// @Router /api/v1/subscription/u/{subscriber_id} [get]
func (h *SubscriptionHandler) Channels(c *fiber.Ctx) error {
	profiles, err := h.SubscriptionUseCase.SubscribedChannels(c.UserContext(), c.Params("subscriber_id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, profiles, "Subscribed channels fetched successfully")
}
