package app

import (
	"context"
	"fmt"

	"video_library_service/internal/like/domain"
	"video_library_service/internal/like/repository"
	videodomain "video_library_service/internal/video/domain"
	"video_library_service/pkg"
	errprocess "video_library_service/pkg/err"
)

// LikeUseCase application services for like toggles
type LikeUseCase interface {
	ToggleVideo(ctx context.Context, userID, videoID string) (*domain.ToggleRes, error)
	ToggleComment(ctx context.Context, userID, commentID string) (*domain.ToggleRes, error)
	ToggleTweet(ctx context.Context, userID, tweetID string) (*domain.ToggleRes, error)
	LikedVideos(ctx context.Context, userID string) ([]videodomain.VideoView, error)
}

type likeUseCase struct {
	likeRepo repository.LikeRepository
}

// NewLikeUseCase create a new LikeUseCase
func NewLikeUseCase(likeRepo repository.LikeRepository) LikeUseCase {
	return &likeUseCase{likeRepo: likeRepo}
}

func (l *likeUseCase) ToggleVideo(ctx context.Context, userID, videoID string) (*domain.ToggleRes, error) {
	return l.toggle(ctx, userID, videoID, domain.KindVideo)
}

func (l *likeUseCase) ToggleComment(ctx context.Context, userID, commentID string) (*domain.ToggleRes, error) {
	return l.toggle(ctx, userID, commentID, domain.KindComment)
}

func (l *likeUseCase) ToggleTweet(ctx context.Context, userID, tweetID string) (*domain.ToggleRes, error) {
	return l.toggle(ctx, userID, tweetID, domain.KindTweet)
}

func (l *likeUseCase) toggle(ctx context.Context, userID, targetID string, kind domain.TargetKind) (*domain.ToggleRes, error) {
	user, err := pkg.ParseID(userID)
	if err != nil {
		return nil, err
	}
	target, err := pkg.ParseID(targetID)
	if err != nil {
		return nil, err
	}

	liked, err := l.likeRepo.Toggle(ctx, user, target, kind)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("toggle %s like failed : %v", kind, err))
	}
	return &domain.ToggleRes{Liked: liked}, nil
}

func (l *likeUseCase) LikedVideos(ctx context.Context, userID string) ([]videodomain.VideoView, error) {
	user, err := pkg.ParseID(userID)
	if err != nil {
		return nil, err
	}

	videos, err := l.likeRepo.LikedVideos(ctx, user)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list liked videos failed : %v", err))
	}
	return videos, nil
}
