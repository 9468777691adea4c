package app

import (
	"context"
	"fmt"
	"strings"

	"video_library_service/internal/playlist/domain"
	"video_library_service/internal/playlist/repository"
	videorepo "video_library_service/internal/video/repository"
	"video_library_service/pkg"
	errprocess "video_library_service/pkg/err"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlaylistUseCase application services for playlists
type PlaylistUseCase interface {
	Create(ctx context.Context, ownerID, title, description string) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PlaylistView, error)
	GetByID(ctx context.Context, playlistID string) (*domain.PlaylistView, error)
	AddVideo(ctx context.Context, playlistID, videoID, requesterID string) (*domain.PlaylistView, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, requesterID string) (*domain.PlaylistView, error)
	Update(ctx context.Context, playlistID, requesterID, title, description string) (*domain.Playlist, error)
	Delete(ctx context.Context, playlistID, requesterID string) error
}

type playlistUseCase struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    videorepo.VideoRepository
}

// NewPlaylistUseCase create a new PlaylistUseCase
func NewPlaylistUseCase(playlistRepo repository.PlaylistRepository,
	videoRepo videorepo.VideoRepository,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
	}
}

func (p *playlistUseCase) Create(ctx context.Context, ownerID, title, description string) (*domain.Playlist, error) {
	owner, err := pkg.ParseID(ownerID)
	if err != nil {
		return nil, err
	}

	playlist := &domain.Playlist{
		Title:       strings.TrimSpace(title),
		Description: description,
		Owner:       owner,
	}
	id, err := p.playlistRepo.Create(ctx, playlist)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errprocess.SetCode(fiber.StatusConflict, "Playlist with this name already exists")
		}
		return nil, errprocess.Set(fmt.Sprintf("create playlist failed : %v", err))
	}
	playlist.ID = id
	return playlist, nil
}

func (p *playlistUseCase) ListByUser(ctx context.Context, userID string) ([]domain.PlaylistView, error) {
	owner, err := pkg.ParseID(userID)
	if err != nil {
		return nil, err
	}

	views, err := p.playlistRepo.ByOwner(ctx, owner)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list playlists failed : %v", err))
	}
	return views, nil
}

func (p *playlistUseCase) GetByID(ctx context.Context, playlistID string) (*domain.PlaylistView, error) {
	id, err := pkg.ParseID(playlistID)
	if err != nil {
		return nil, err
	}

	view, err := p.playlistRepo.ViewByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errprocess.SetCode(fiber.StatusNotFound, "Playlist not found")
		}
		return nil, errprocess.Set(fmt.Sprintf("get playlist failed : %v", err))
	}
	return view, nil
}

func (p *playlistUseCase) AddVideo(ctx context.Context, playlistID, videoID, requesterID string) (*domain.PlaylistView, error) {
	playlist, video, err := p.ownedPlaylistVideo(ctx, playlistID, videoID, requesterID, "modify")
	if err != nil {
		return nil, err
	}

	added, err := p.playlistRepo.AddVideo(ctx, playlist, video)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("add video to playlist failed : %v", err))
	}
	if !added {
		return nil, errprocess.SetCode(fiber.StatusNotFound, "Video already in this playlist")
	}

	return p.view(ctx, playlist)
}

func (p *playlistUseCase) RemoveVideo(ctx context.Context, playlistID, videoID, requesterID string) (*domain.PlaylistView, error) {
	playlist, video, err := p.ownedPlaylistVideo(ctx, playlistID, videoID, requesterID, "modify")
	if err != nil {
		return nil, err
	}

	removed, err := p.playlistRepo.RemoveVideo(ctx, playlist, video)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("remove video from playlist failed : %v", err))
	}
	if !removed {
		return nil, errprocess.SetCode(fiber.StatusNotFound, "Video not found in this playlist")
	}

	return p.view(ctx, playlist)
}

func (p *playlistUseCase) Update(ctx context.Context, playlistID, requesterID, title, description string) (*domain.Playlist, error) {
	id, err := p.ownedPlaylist(ctx, playlistID, requesterID, "update")
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if title = strings.TrimSpace(title); title != "" {
		fields["title"] = title
	}
	if description != "" {
		fields["description"] = description
	}
	if len(fields) > 0 {
		if err := p.playlistRepo.UpdateFields(ctx, id, fields); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, errprocess.SetCode(fiber.StatusConflict, "Playlist with this name already exists")
			}
			return nil, errprocess.Set(fmt.Sprintf("update playlist failed : %v", err))
		}
	}

	playlist, err := p.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("get playlist failed : %v", err))
	}
	return playlist, nil
}

func (p *playlistUseCase) Delete(ctx context.Context, playlistID, requesterID string) error {
	id, err := p.ownedPlaylist(ctx, playlistID, requesterID, "delete")
	if err != nil {
		return err
	}

	if err := p.playlistRepo.Delete(ctx, id); err != nil {
		return errprocess.Set(fmt.Sprintf("delete playlist failed : %v", err))
	}
	return nil
}

// ownedPlaylist fetch the playlist and check the requester owns it
func (p *playlistUseCase) ownedPlaylist(ctx context.Context, playlistID, requesterID, action string) (primitive.ObjectID, error) {
	id, err := pkg.ParseID(playlistID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	requester, err := pkg.ParseID(requesterID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	playlist, err := p.playlistRepo.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return primitive.NilObjectID, errprocess.SetCode(fiber.StatusNotFound, "Playlist not found")
		}
		return primitive.NilObjectID, errprocess.Set(fmt.Sprintf("get playlist failed : %v", err))
	}
	if playlist.Owner != requester {
		return primitive.NilObjectID, errprocess.SetCode(fiber.StatusForbidden,
			fmt.Sprintf("You are not allowed to %s this playlist", action))
	}
	return id, nil
}

func (p *playlistUseCase) ownedPlaylistVideo(ctx context.Context, playlistID, videoID, requesterID, action string) (primitive.ObjectID, primitive.ObjectID, error) {
	playlist, err := p.ownedPlaylist(ctx, playlistID, requesterID, action)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}

	video, err := pkg.ParseID(videoID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	if _, err := p.videoRepo.GetByID(ctx, video); err != nil {
		if err == mongo.ErrNoDocuments {
			return primitive.NilObjectID, primitive.NilObjectID, errprocess.SetCode(fiber.StatusNotFound, "Video not found")
		}
		return primitive.NilObjectID, primitive.NilObjectID, errprocess.Set(fmt.Sprintf("get video failed : %v", err))
	}
	return playlist, video, nil
}

func (p *playlistUseCase) view(ctx context.Context, id primitive.ObjectID) (*domain.PlaylistView, error) {
	view, err := p.playlistRepo.ViewByID(ctx, id)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("get playlist failed : %v", err))
	}
	return view, nil
}
