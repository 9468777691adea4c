package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"video_library_service/internal/user/domain"
	videodomain "video_library_service/internal/video/domain"
	"video_library_service/pkg/database"
	"video_library_service/pkg/encrypt"
	"video_library_service/pkg/logger"
	token "video_library_service/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockUserRepo Mock UserRepository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockUserRepo) Find(ctx context.Context, query *domain.UserQuery) (*domain.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepo) FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}
func (m *MockUserRepo) SetRefreshToken(ctx context.Context, id primitive.ObjectID, t string) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}
func (m *MockUserRepo) AddWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}
func (m *MockUserRepo) ChannelView(ctx context.Context, username string, viewer primitive.ObjectID) (*domain.ChannelView, error) {
	args := m.Called(ctx, username, viewer)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.ChannelView), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepo) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]videodomain.VideoView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) != nil {
		return args.Get(0).([]videodomain.VideoView), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMediaStore Mock the media object store
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) UploadFile(ctx context.Context, objectName, filePath, contentType string) error {
	args := m.Called(ctx, objectName, filePath, contentType)
	return args.Error(0)
}
func (m *MockMediaStore) UploadReader(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, objectName, r, size, contentType)
	return args.Error(0)
}
func (m *MockMediaStore) DownloadFile(ctx context.Context, objectName, destPath string) error {
	args := m.Called(ctx, objectName, destPath)
	return args.Error(0)
}
func (m *MockMediaStore) RemoveFile(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
func (m *MockMediaStore) PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}
func (m *MockMediaStore) ObjectURL(objectName string) string {
	args := m.Called(objectName)
	return args.String(0)
}

func avatarUpload() database.FileUpload {
	return database.FileUpload{
		FileName:    "avatar.png",
		ContentType: "image/png",
		Size:        4,
		File:        strings.NewReader("data"),
	}
}

func TestUserUseCase_Register(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	logger.SetNewNop()

	t.Run("register success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		mockMedia.On("UploadReader", ctx, mock.Anything, mock.Anything, int64(4), "image/png").Return(nil).Once()
		mockMedia.On("ObjectURL", mock.Anything).Return("http://minio/media/images/a.png").Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(userID, nil).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		user, err := uc.Register(ctx, domain.RegisterReq{
			Username: "  Alice ",
			Email:    "alice@example.com",
			Fullname: "Alice Example",
			Password: "secret",
			Avatar:   avatarUpload(),
		})

		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "http://minio/media/images/a.png", user.Avatar)
		assert.NotEqual(t, "secret", user.Password)
		mockRepo.AssertExpectations(t)
		mockMedia.AssertExpectations(t)
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		mockMedia.On("UploadReader", ctx, mock.Anything, mock.Anything, int64(4), "image/png").Return(nil).Once()
		mockMedia.On("ObjectURL", mock.Anything).Return("http://minio/media/images/a.png").Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(primitive.NilObjectID, dup).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		_, err := uc.Register(ctx, domain.RegisterReq{
			Username: "alice",
			Email:    "alice@example.com",
			Fullname: "Alice Example",
			Password: "secret",
			Avatar:   avatarUpload(),
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User with email or username already exists")
		mockRepo.AssertExpectations(t)
	})

	t.Run("avatar upload failed", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		mockMedia.On("UploadReader", ctx, mock.Anything, mock.Anything, int64(4), "image/png").
			Return(errors.New("minio down")).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		_, err := uc.Register(ctx, domain.RegisterReq{
			Username: "alice",
			Email:    "alice@example.com",
			Fullname: "Alice Example",
			Password: "secret",
			Avatar:   avatarUpload(),
		})

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_Login(t *testing.T) {
	ctx := context.Background()
	hashed, _ := encrypt.HashPassword("secret")
	userID := primitive.NewObjectID()

	logger.SetNewNop()

	t.Run("login success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		existing := &domain.User{ID: userID, Username: "alice", Password: hashed}
		mockRepo.On("FindByUsernameOrEmail", ctx, "alice").Return(existing, nil).Once()
		mockRepo.On("SetRefreshToken", ctx, userID, mock.Anything).Return(nil).Once()

		originalAccess := token.GenerateAccessJWTFunc
		originalRefresh := token.GenerateRefreshJWTFunc
		defer func() {
			token.GenerateAccessJWTFunc = originalAccess
			token.GenerateRefreshJWTFunc = originalRefresh
		}()
		token.GenerateAccessJWTFunc = func(userID, issuer string) (string, error) { return "access", nil }
		token.GenerateRefreshJWTFunc = func(userID, issuer string) (string, error) { return "refresh", nil }

		uc := NewUserUseCase(mockRepo, mockMedia)
		res, err := uc.Login(ctx, "alice", "secret")

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("user does not exist", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		mockRepo.On("FindByUsernameOrEmail", ctx, "ghost").
			Return(nil, mongo.ErrNoDocuments).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		res, err := uc.Login(ctx, "ghost", "secret")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User does not exist")
		assert.Nil(t, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		existing := &domain.User{ID: userID, Username: "alice", Password: hashed}
		mockRepo.On("FindByUsernameOrEmail", ctx, "alice").Return(existing, nil).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		res, err := uc.Login(ctx, "alice", "wrong")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid user credentials")
		assert.Nil(t, res)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserUseCase_RefreshTokens(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	logger.SetNewNop()

	originalParse := token.ParseRefreshJWTFunc
	originalAccess := token.GenerateAccessJWTFunc
	originalRefresh := token.GenerateRefreshJWTFunc
	defer func() {
		token.ParseRefreshJWTFunc = originalParse
		token.GenerateAccessJWTFunc = originalAccess
		token.GenerateRefreshJWTFunc = originalRefresh
	}()

	t.Run("rotate success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		token.ParseRefreshJWTFunc = func(t string) (*token.Claims, error) {
			return &token.Claims{UserID: userID.Hex()}, nil
		}
		token.GenerateAccessJWTFunc = func(userID, issuer string) (string, error) { return "access2", nil }
		token.GenerateRefreshJWTFunc = func(userID, issuer string) (string, error) { return "refresh2", nil }

		existing := &domain.User{ID: userID, RefreshToken: "refresh1"}
		mockRepo.On("Find", ctx, &domain.UserQuery{ID: &userID}).Return(existing, nil).Once()
		mockRepo.On("SetRefreshToken", ctx, userID, "refresh2").Return(nil).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		pair, err := uc.RefreshTokens(ctx, "refresh1")

		assert.NoError(t, err)
		assert.Equal(t, "access2", pair.AccessToken)
		assert.Equal(t, "refresh2", pair.RefreshToken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		token.ParseRefreshJWTFunc = func(t string) (*token.Claims, error) {
			return nil, errors.New("expired")
		}

		uc := NewUserUseCase(mockRepo, mockMedia)
		_, err := uc.RefreshTokens(ctx, "bad")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid refresh token")
	})

	t.Run("stored token mismatch", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		token.ParseRefreshJWTFunc = func(t string) (*token.Claims, error) {
			return &token.Claims{UserID: userID.Hex()}, nil
		}

		existing := &domain.User{ID: userID, RefreshToken: "other"}
		mockRepo.On("Find", ctx, &domain.UserQuery{ID: &userID}).Return(existing, nil).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		_, err := uc.RefreshTokens(ctx, "refresh1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Refresh token is expired or used")
		mockRepo.AssertExpectations(t)
	})
}

func TestUserUseCase_ChangePassword(t *testing.T) {
	ctx := context.Background()
	hashed, _ := encrypt.HashPassword("old")
	userID := primitive.NewObjectID()

	logger.SetNewNop()

	t.Run("change success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		existing := &domain.User{ID: userID, Password: hashed}
		mockRepo.On("Find", ctx, &domain.UserQuery{ID: &userID}).Return(existing, nil).Once()
		mockRepo.On("UpdateFields", ctx, userID, mock.Anything).Return(nil).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		err := uc.ChangePassword(ctx, userID.Hex(), "old", "new")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid old password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		existing := &domain.User{ID: userID, Password: hashed}
		mockRepo.On("Find", ctx, &domain.UserQuery{ID: &userID}).Return(existing, nil).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		err := uc.ChangePassword(ctx, userID.Hex(), "wrong", "new")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid old password")
		mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_UpdateAvatar(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	logger.SetNewNop()

	t.Run("replace avatar removes old object", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		existing := &domain.User{ID: userID, Avatar: "http://minio/media/images/old.png"}
		mockRepo.On("Find", ctx, &domain.UserQuery{ID: &userID}).Return(existing, nil).Twice()
		mockMedia.On("UploadReader", ctx, mock.Anything, mock.Anything, int64(4), "image/png").Return(nil).Once()
		mockMedia.On("ObjectURL", mock.Anything).Return("http://minio/media/images/new.png").Once()
		mockRepo.On("UpdateFields", ctx, userID, bson.M{"avatar": "http://minio/media/images/new.png"}).Return(nil).Once()
		mockMedia.On("RemoveFile", mock.Anything, "images/old.png").Return(nil).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		_, err := uc.UpdateAvatar(ctx, userID.Hex(), avatarUpload())

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockMedia.AssertExpectations(t)
	})

	t.Run("old object delete failure is swallowed", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		existing := &domain.User{ID: userID, Avatar: "http://minio/media/images/old.png"}
		mockRepo.On("Find", ctx, &domain.UserQuery{ID: &userID}).Return(existing, nil).Twice()
		mockMedia.On("UploadReader", ctx, mock.Anything, mock.Anything, int64(4), "image/png").Return(nil).Once()
		mockMedia.On("ObjectURL", mock.Anything).Return("http://minio/media/images/new.png").Once()
		mockRepo.On("UpdateFields", ctx, userID, mock.Anything).Return(nil).Once()
		mockMedia.On("RemoveFile", mock.Anything, "images/old.png").Return(errors.New("minio down")).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		_, err := uc.UpdateAvatar(ctx, userID.Hex(), avatarUpload())

		assert.NoError(t, err)
		mockMedia.AssertExpectations(t)
	})
}

func TestUserUseCase_GetChannel(t *testing.T) {
	ctx := context.Background()
	viewer := primitive.NewObjectID()

	logger.SetNewNop()

	t.Run("channel found", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		view := &domain.ChannelView{Username: "alice", SubscriberCount: 3, IsSubscribed: true}
		mockRepo.On("ChannelView", ctx, "alice", viewer).Return(view, nil).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		channel, err := uc.GetChannel(ctx, " Alice ", viewer.Hex())

		assert.NoError(t, err)
		assert.Equal(t, view, channel)
		mockRepo.AssertExpectations(t)
	})

	t.Run("channel does not exist", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockMedia := new(MockMediaStore)

		mockRepo.On("ChannelView", ctx, "ghost", viewer).Return(nil, mongo.ErrNoDocuments).Once()

		uc := NewUserUseCase(mockRepo, mockMedia)
		_, err := uc.GetChannel(ctx, "ghost", viewer.Hex())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Channel does not exist")
		mockRepo.AssertExpectations(t)
	})
}
