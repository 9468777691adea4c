package app

import (
	"context"
	"fmt"

	"video_library_service/internal/subscription/domain"
	"video_library_service/internal/subscription/repository"
	userdomain "video_library_service/internal/user/domain"
	userrepo "video_library_service/internal/user/repository"
	"video_library_service/pkg"
	errprocess "video_library_service/pkg/err"

	"github.com/gofiber/fiber/v2"
)

// SubscriptionUseCase application services for channel subscriptions
type SubscriptionUseCase interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (*domain.ToggleRes, error)
	ChannelSubscribers(ctx context.Context, channelID string) ([]userdomain.Profile, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]userdomain.Profile, error)
}

type subscriptionUseCase struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         userrepo.UserRepository
}

// NewSubscriptionUseCase create a new SubscriptionUseCase
func NewSubscriptionUseCase(subscriptionRepo repository.SubscriptionRepository,
	userRepo userrepo.UserRepository,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

// Toggle flip the edge and return the requester's profile with the new state
func (s *subscriptionUseCase) Toggle(ctx context.Context, subscriberID, channelID string) (*domain.ToggleRes, error) {
	subscriber, err := pkg.ParseID(subscriberID)
	if err != nil {
		return nil, err
	}
	channel, err := pkg.ParseID(channelID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Find(ctx, &userdomain.UserQuery{ID: &subscriber})
	if err != nil {
		return nil, errprocess.SetCode(fiber.StatusNotFound, "User does not exist")
	}

	subscribed, err := s.subscriptionRepo.Toggle(ctx, subscriber, channel)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("toggle subscription failed : %v", err))
	}

	return &domain.ToggleRes{
		Subscriber: userdomain.Profile{
			ID:       user.ID,
			Username: user.Username,
			Fullname: user.Fullname,
			Avatar:   user.Avatar,
		},
		IsSubscribed: subscribed,
	}, nil
}

func (s *subscriptionUseCase) ChannelSubscribers(ctx context.Context, channelID string) ([]userdomain.Profile, error) {
	channel, err := pkg.ParseID(channelID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.subscriptionRepo.Subscribers(ctx, channel)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list subscribers failed : %v", err))
	}
	return profiles, nil
}

func (s *subscriptionUseCase) SubscribedChannels(ctx context.Context, subscriberID string) ([]userdomain.Profile, error) {
	subscriber, err := pkg.ParseID(subscriberID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.subscriptionRepo.Channels(ctx, subscriber)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list subscribed channels failed : %v", err))
	}
	return profiles, nil
}
