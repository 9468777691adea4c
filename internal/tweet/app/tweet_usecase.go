package app

import (
	"context"
	"fmt"

	"video_library_service/internal/tweet/domain"
	"video_library_service/internal/tweet/repository"
	"video_library_service/pkg"
	errprocess "video_library_service/pkg/err"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// TweetUseCase application services for channel posts
type TweetUseCase interface {
	Create(ctx context.Context, ownerID, content string) (*domain.Tweet, error)
	ListByUser(ctx context.Context, userID, viewerID string) ([]domain.TweetView, error)
	Update(ctx context.Context, tweetID, ownerID, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, tweetID, ownerID string) error
}

type tweetUseCase struct {
	tweetRepo repository.TweetRepository
}

// NewTweetUseCase create a new TweetUseCase
func NewTweetUseCase(tweetRepo repository.TweetRepository) TweetUseCase {
	return &tweetUseCase{tweetRepo: tweetRepo}
}

func (t *tweetUseCase) Create(ctx context.Context, ownerID, content string) (*domain.Tweet, error) {
	owner, err := pkg.ParseID(ownerID)
	if err != nil {
		return nil, err
	}

	tweet := domain.Tweet{
		Content: content,
		Owner:   owner,
	}
	id, err := t.tweetRepo.Create(ctx, &tweet)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("create tweet failed : %v", err))
	}
	tweet.ID = id
	return &tweet, nil
}

func (t *tweetUseCase) ListByUser(ctx context.Context, userID, viewerID string) ([]domain.TweetView, error) {
	owner, err := pkg.ParseID(userID)
	if err != nil {
		return nil, err
	}
	viewer, err := pkg.ParseID(viewerID)
	if err != nil {
		return nil, err
	}

	tweets, err := t.tweetRepo.ByOwner(ctx, owner, viewer)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list tweets failed : %v", err))
	}
	return tweets, nil
}

func (t *tweetUseCase) Update(ctx context.Context, tweetID, ownerID, content string) (*domain.Tweet, error) {
	tweet, err := t.ownedTweet(ctx, tweetID, ownerID, "update")
	if err != nil {
		return nil, err
	}

	if err := t.tweetRepo.UpdateContent(ctx, tweet.ID, content); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("update tweet failed : %v", err))
	}
	tweet.Content = content
	return tweet, nil
}

func (t *tweetUseCase) Delete(ctx context.Context, tweetID, ownerID string) error {
	tweet, err := t.ownedTweet(ctx, tweetID, ownerID, "delete")
	if err != nil {
		return err
	}

	if err := t.tweetRepo.Delete(ctx, tweet.ID); err != nil {
		return errprocess.Set(fmt.Sprintf("delete tweet failed : %v", err))
	}
	return nil
}

func (t *tweetUseCase) ownedTweet(ctx context.Context, tweetID, ownerID, action string) (*domain.Tweet, error) {
	tid, err := pkg.ParseID(tweetID)
	if err != nil {
		return nil, err
	}
	owner, err := pkg.ParseID(ownerID)
	if err != nil {
		return nil, err
	}

	tweet, err := t.tweetRepo.GetByID(ctx, tid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errprocess.SetCode(fiber.StatusNotFound, "Tweet not found")
		}
		return nil, errprocess.Set(fmt.Sprintf("load tweet failed : %v", err))
	}

	if tweet.Owner != owner {
		return nil, errprocess.SetCode(fiber.StatusForbidden,
			fmt.Sprintf("You are not allowed to %s this tweet", action))
	}
	return tweet, nil
}
