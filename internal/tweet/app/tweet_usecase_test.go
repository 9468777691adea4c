package app

import (
	"context"
	"testing"

	"video_library_service/internal/tweet/domain"
	"video_library_service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockTweetRepo Mock TweetRepository
type MockTweetRepo struct {
	mock.Mock
}

func (m *MockTweetRepo) Create(ctx context.Context, tweet *domain.Tweet) (primitive.ObjectID, error) {
	args := m.Called(ctx, tweet)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockTweetRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Tweet), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockTweetRepo) ByOwner(ctx context.Context, owner, viewer primitive.ObjectID) ([]domain.TweetView, error) {
	args := m.Called(ctx, owner, viewer)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.TweetView), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockTweetRepo) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}
func (m *MockTweetRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestTweetUseCase_Create(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	tweetID := primitive.NewObjectID()

	logger.SetNewNop()

	t.Run("create success", func(t *testing.T) {
		mockRepo := new(MockTweetRepo)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(tw *domain.Tweet) bool {
			return tw.Content == "hello channel" && tw.Owner == owner
		})).Return(tweetID, nil).Once()

		uc := NewTweetUseCase(mockRepo)
		tweet, err := uc.Create(ctx, owner.Hex(), "hello channel")

		assert.NoError(t, err)
		assert.Equal(t, tweetID, tweet.ID)
		assert.Equal(t, "hello channel", tweet.Content)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid owner id", func(t *testing.T) {
		mockRepo := new(MockTweetRepo)

		uc := NewTweetUseCase(mockRepo)
		_, err := uc.Create(ctx, "not-an-id", "hello")

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTweetUseCase_ListByUser(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	viewer := primitive.NewObjectID()

	logger.SetNewNop()

	t.Run("list success", func(t *testing.T) {
		mockRepo := new(MockTweetRepo)
		mockRepo.On("ByOwner", ctx, owner, viewer).
			Return([]domain.TweetView{{Content: "first", LikeCount: 3, Liked: true}}, nil).Once()

		uc := NewTweetUseCase(mockRepo)
		tweets, err := uc.ListByUser(ctx, owner.Hex(), viewer.Hex())

		assert.NoError(t, err)
		assert.Len(t, tweets, 1)
		assert.True(t, tweets[0].Liked)
		mockRepo.AssertExpectations(t)
	})
}

func TestTweetUseCase_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	tweetID := primitive.NewObjectID()

	logger.SetNewNop()

	stored := func() *domain.Tweet {
		return &domain.Tweet{ID: tweetID, Content: "old", Owner: owner}
	}

	t.Run("update success", func(t *testing.T) {
		mockRepo := new(MockTweetRepo)
		mockRepo.On("GetByID", ctx, tweetID).Return(stored(), nil).Once()
		mockRepo.On("UpdateContent", ctx, tweetID, "new").Return(nil).Once()

		uc := NewTweetUseCase(mockRepo)
		tweet, err := uc.Update(ctx, tweetID.Hex(), owner.Hex(), "new")

		assert.NoError(t, err)
		assert.Equal(t, "new", tweet.Content)
		mockRepo.AssertExpectations(t)
	})

	t.Run("update by stranger", func(t *testing.T) {
		mockRepo := new(MockTweetRepo)
		mockRepo.On("GetByID", ctx, tweetID).Return(stored(), nil).Once()

		uc := NewTweetUseCase(mockRepo)
		_, err := uc.Update(ctx, tweetID.Hex(), stranger.Hex(), "new")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You are not allowed to update this tweet")
		mockRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete missing tweet", func(t *testing.T) {
		mockRepo := new(MockTweetRepo)
		mockRepo.On("GetByID", ctx, tweetID).Return(nil, mongo.ErrNoDocuments).Once()

		uc := NewTweetUseCase(mockRepo)
		err := uc.Delete(ctx, tweetID.Hex(), owner.Hex())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Tweet not found")
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete success", func(t *testing.T) {
		mockRepo := new(MockTweetRepo)
		mockRepo.On("GetByID", ctx, tweetID).Return(stored(), nil).Once()
		mockRepo.On("Delete", ctx, tweetID).Return(nil).Once()

		uc := NewTweetUseCase(mockRepo)
		err := uc.Delete(ctx, tweetID.Hex(), owner.Hex())

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
