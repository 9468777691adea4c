package app

import (
	"context"
	"testing"

	"video_library_service/internal/playlist/domain"
	videodomain "video_library_service/internal/video/domain"
	"video_library_service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockPlaylistRepo Mock PlaylistRepository
type MockPlaylistRepo struct {
	mock.Mock
}

func (m *MockPlaylistRepo) Create(ctx context.Context, playlist *domain.Playlist) (primitive.ObjectID, error) {
	args := m.Called(ctx, playlist)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockPlaylistRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playlist), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockPlaylistRepo) ViewByID(ctx context.Context, id primitive.ObjectID) (*domain.PlaylistView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.PlaylistView), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockPlaylistRepo) ByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.PlaylistView, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.PlaylistView), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockPlaylistRepo) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id, videoID)
	return args.Bool(0), args.Error(1)
}
func (m *MockPlaylistRepo) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id, videoID)
	return args.Bool(0), args.Error(1)
}
func (m *MockPlaylistRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}
func (m *MockPlaylistRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVideoRepo Mock VideoRepository, playlist flows only check existence
type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) Create(ctx context.Context, video *videodomain.Video) (primitive.ObjectID, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockVideoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*videodomain.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockVideoRepo) Detail(ctx context.Context, id, viewer primitive.ObjectID) (*videodomain.VideoDetail, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) != nil {
		return args.Get(0).(*videodomain.VideoDetail), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockVideoRepo) List(ctx context.Context, q videodomain.ListQuery) ([]videodomain.VideoView, error) {
	args := m.Called(ctx, q)
	if args.Get(0) != nil {
		return args.Get(0).([]videodomain.VideoView), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockVideoRepo) ByOwner(ctx context.Context, owner primitive.ObjectID) ([]videodomain.VideoView, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) != nil {
		return args.Get(0).([]videodomain.VideoView), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockVideoRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}
func (m *MockVideoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVideoRepo) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestPlaylistUseCase_Create(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()

	logger.SetNewNop()

	t.Run("create success", func(t *testing.T) {
		mockPlaylist := new(MockPlaylistRepo)
		mockVideo := new(MockVideoRepo)

		mockPlaylist.On("Create", ctx, mock.Anything).Return(playlistID, nil).Once()

		uc := NewPlaylistUseCase(mockPlaylist, mockVideo)
		playlist, err := uc.Create(ctx, owner.Hex(), " Watch later ", "queue")

		assert.NoError(t, err)
		assert.Equal(t, playlistID, playlist.ID)
		assert.Equal(t, "Watch later", playlist.Title)
		mockPlaylist.AssertExpectations(t)
	})

	t.Run("duplicate title for the same owner", func(t *testing.T) {
		mockPlaylist := new(MockPlaylistRepo)
		mockVideo := new(MockVideoRepo)

		dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		mockPlaylist.On("Create", ctx, mock.Anything).Return(primitive.NilObjectID, dup).Once()

		uc := NewPlaylistUseCase(mockPlaylist, mockVideo)
		_, err := uc.Create(ctx, owner.Hex(), "Watch later", "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Playlist with this name already exists")
		mockPlaylist.AssertExpectations(t)
	})
}

func TestPlaylistUseCase_AddVideo(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	logger.SetNewNop()

	stored := func() *domain.Playlist {
		return &domain.Playlist{ID: playlistID, Title: "Watch later", Owner: owner}
	}

	t.Run("add success returns the refreshed view", func(t *testing.T) {
		mockPlaylist := new(MockPlaylistRepo)
		mockVideo := new(MockVideoRepo)

		mockPlaylist.On("GetByID", ctx, playlistID).Return(stored(), nil).Once()
		mockVideo.On("GetByID", ctx, videoID).Return(&videodomain.Video{ID: videoID}, nil).Once()
		mockPlaylist.On("AddVideo", ctx, playlistID, videoID).Return(true, nil).Once()
		mockPlaylist.On("ViewByID", ctx, playlistID).
			Return(&domain.PlaylistView{ID: playlistID, Videos: []videodomain.VideoView{{ID: videoID}}}, nil).Once()

		uc := NewPlaylistUseCase(mockPlaylist, mockVideo)
		view, err := uc.AddVideo(ctx, playlistID.Hex(), videoID.Hex(), owner.Hex())

		assert.NoError(t, err)
		assert.Len(t, view.Videos, 1)
		mockPlaylist.AssertExpectations(t)
	})

	t.Run("video already in the playlist", func(t *testing.T) {
		mockPlaylist := new(MockPlaylistRepo)
		mockVideo := new(MockVideoRepo)

		mockPlaylist.On("GetByID", ctx, playlistID).Return(stored(), nil).Once()
		mockVideo.On("GetByID", ctx, videoID).Return(&videodomain.Video{ID: videoID}, nil).Once()
		mockPlaylist.On("AddVideo", ctx, playlistID, videoID).Return(false, nil).Once()

		uc := NewPlaylistUseCase(mockPlaylist, mockVideo)
		_, err := uc.AddVideo(ctx, playlistID.Hex(), videoID.Hex(), owner.Hex())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already in this playlist")
		mockPlaylist.AssertNotCalled(t, "ViewByID", mock.Anything, mock.Anything)
	})

	t.Run("not the owner", func(t *testing.T) {
		mockPlaylist := new(MockPlaylistRepo)
		mockVideo := new(MockVideoRepo)

		mockPlaylist.On("GetByID", ctx, playlistID).Return(stored(), nil).Once()

		uc := NewPlaylistUseCase(mockPlaylist, mockVideo)
		_, err := uc.AddVideo(ctx, playlistID.Hex(), videoID.Hex(), stranger.Hex())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You are not allowed to modify this playlist")
		mockPlaylist.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("video does not exist", func(t *testing.T) {
		mockPlaylist := new(MockPlaylistRepo)
		mockVideo := new(MockVideoRepo)

		mockPlaylist.On("GetByID", ctx, playlistID).Return(stored(), nil).Once()
		mockVideo.On("GetByID", ctx, videoID).Return(nil, mongo.ErrNoDocuments).Once()

		uc := NewPlaylistUseCase(mockPlaylist, mockVideo)
		_, err := uc.AddVideo(ctx, playlistID.Hex(), videoID.Hex(), owner.Hex())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Video not found")
		mockPlaylist.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPlaylistUseCase_RemoveVideo(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	logger.SetNewNop()

	stored := func() *domain.Playlist {
		return &domain.Playlist{ID: playlistID, Title: "Watch later", Owner: owner}
	}

	t.Run("remove success", func(t *testing.T) {
		mockPlaylist := new(MockPlaylistRepo)
		mockVideo := new(MockVideoRepo)

		mockPlaylist.On("GetByID", ctx, playlistID).Return(stored(), nil).Once()
		mockVideo.On("GetByID", ctx, videoID).Return(&videodomain.Video{ID: videoID}, nil).Once()
		mockPlaylist.On("RemoveVideo", ctx, playlistID, videoID).Return(true, nil).Once()
		mockPlaylist.On("ViewByID", ctx, playlistID).
			Return(&domain.PlaylistView{ID: playlistID, Videos: []videodomain.VideoView{}}, nil).Once()

		uc := NewPlaylistUseCase(mockPlaylist, mockVideo)
		view, err := uc.RemoveVideo(ctx, playlistID.Hex(), videoID.Hex(), owner.Hex())

		assert.NoError(t, err)
		assert.Empty(t, view.Videos)
		mockPlaylist.AssertExpectations(t)
	})

	t.Run("video not in the playlist", func(t *testing.T) {
		mockPlaylist := new(MockPlaylistRepo)
		mockVideo := new(MockVideoRepo)

		mockPlaylist.On("GetByID", ctx, playlistID).Return(stored(), nil).Once()
		mockVideo.On("GetByID", ctx, videoID).Return(&videodomain.Video{ID: videoID}, nil).Once()
		mockPlaylist.On("RemoveVideo", ctx, playlistID, videoID).Return(false, nil).Once()

		uc := NewPlaylistUseCase(mockPlaylist, mockVideo)
		_, err := uc.RemoveVideo(ctx, playlistID.Hex(), videoID.Hex(), owner.Hex())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in this playlist")
		mockPlaylist.AssertExpectations(t)
	})
}

func TestPlaylistUseCase_GetByID(t *testing.T) {
	ctx := context.Background()
	playlistID := primitive.NewObjectID()

	logger.SetNewNop()

	t.Run("playlist not found", func(t *testing.T) {
		mockPlaylist := new(MockPlaylistRepo)
		mockVideo := new(MockVideoRepo)

		mockPlaylist.On("ViewByID", ctx, playlistID).Return(nil, mongo.ErrNoDocuments).Once()

		uc := NewPlaylistUseCase(mockPlaylist, mockVideo)
		_, err := uc.GetByID(ctx, playlistID.Hex())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Playlist not found")
		mockPlaylist.AssertExpectations(t)
	})
}
