package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	userrepo "video_library_service/internal/user/repository"
	"video_library_service/internal/video/domain"
	"video_library_service/internal/video/repository"
	"video_library_service/pkg"
	"video_library_service/pkg/database"
	errprocess "video_library_service/pkg/err"
	"video_library_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userdomain "video_library_service/internal/user/domain"
)

// VideoUseCase application services for video content
type VideoUseCase interface {
	List(ctx context.Context, q domain.ListQuery) ([]domain.VideoView, error)
	Publish(ctx context.Context, ownerID string, req domain.PublishReq) (*domain.Video, error)
	Get(ctx context.Context, videoID, viewerID string) (*domain.VideoDetail, error)
	Update(ctx context.Context, videoID, ownerID string, req domain.UpdateReq) (*domain.Video, error)
	Delete(ctx context.Context, videoID, ownerID string) error
	TogglePublish(ctx context.Context, videoID, ownerID string) (*domain.Video, error)
	ByChannel(ctx context.Context, username string) ([]domain.VideoView, error)
}

type videoUseCase struct {
	videoRepo repository.VideoRepository
	userRepo  userrepo.UserRepository
	media     database.MinIOClientRepo
	tmpDir    string
}

// NewVideoUseCase create a new VideoUseCase
func NewVideoUseCase(videoRepo repository.VideoRepository,
	userRepo userrepo.UserRepository,
	media database.MinIOClientRepo,
	tmpDir string,
) VideoUseCase {
	if tmpDir == "" {
		tmpDir = "./tmp"
	}
	return &videoUseCase{
		videoRepo: videoRepo,
		userRepo:  userRepo,
		media:     media,
		tmpDir:    tmpDir,
	}
}

// These variables are swapped out by tests.
var (
	createDir = func(path string) error {
		return os.MkdirAll(path, 0755)
	}

	createFile = func(name string) (*os.File, error) {
		return os.Create(name)
	}

	copyFile = func(dst *os.File, src io.Reader) (written int64, err error) {
		return io.Copy(dst, src)
	}

	removeFile = func(name string) error {
		return os.Remove(name)
	}

	probeDuration = func(path string) (float64, error) {
		out, err := exec.Command("ffprobe",
			"-v", "error",
			"-show_entries", "format=duration",
			"-of", "default=noprint_wrappers=1:nokey=1",
			path,
		).Output()
		if err != nil {
			return 0, err
		}
		return strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	}
)

func (s *videoUseCase) List(ctx context.Context, q domain.ListQuery) ([]domain.VideoView, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	videos, err := s.videoRepo.List(ctx, q)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list videos failed : %v", err))
	}
	return videos, nil
}

// Publish stage the upload to a temp file, probe its duration and store both
// objects before the record is created
func (s *videoUseCase) Publish(ctx context.Context, ownerID string, req domain.PublishReq) (*domain.Video, error) {
	owner, err := pkg.ParseID(ownerID)
	if err != nil {
		return nil, err
	}

	if err := createDir(s.tmpDir); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] create temp dir failed : %v", req.VideoFile.FileName, err))
	}

	tempPath := filepath.Join(s.tmpDir, uuid.New().String()+filepath.Ext(req.VideoFile.FileName))
	tempFile, err := createFile(tempPath)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] create temp file failed : %v", req.VideoFile.FileName, err))
	}

	if _, err := copyFile(tempFile, req.VideoFile.File); err != nil {
		tempFile.Close()
		return nil, errprocess.Set(fmt.Sprintf("fileName[%s] save temp file failed : %v", req.VideoFile.FileName, err))
	}
	tempFile.Close()
	defer func() {
		if err := removeFile(tempPath); err != nil {
			logger.Log.Warn("remove temp file failed", zap.String("path", tempPath), zap.Error(err))
		}
	}()

	duration, err := probeDuration(tempPath)
	if err != nil {
		logger.Log.Warn("probe duration failed", zap.String("path", tempPath), zap.Error(err))
		duration = 0
	}

	videoObject := fmt.Sprintf("videos/%s%s", uuid.New().String(), filepath.Ext(req.VideoFile.FileName))
	if err := s.media.UploadFile(ctx, videoObject, tempPath, req.VideoFile.ContentType); err != nil {
		return nil, errprocess.SetCode(fiber.StatusInternalServerError,
			fmt.Sprintf("fileName[%s] upload to media store failed : %v", req.VideoFile.FileName, err))
	}

	thumbObject := fmt.Sprintf("thumbnails/%s%s", uuid.New().String(), filepath.Ext(req.Thumbnail.FileName))
	if err := s.media.UploadReader(ctx, thumbObject, req.Thumbnail.File, req.Thumbnail.Size, req.Thumbnail.ContentType); err != nil {
		return nil, errprocess.SetCode(fiber.StatusInternalServerError,
			fmt.Sprintf("fileName[%s] upload to media store failed : %v", req.Thumbnail.FileName, err))
	}

	video := domain.Video{
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   s.media.ObjectURL(videoObject),
		Thumbnail:   s.media.ObjectURL(thumbObject),
		Duration:    duration,
		IsPublished: true,
		Owner:       owner,
	}

	id, err := s.videoRepo.Create(ctx, &video)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("create video failed : %v", err))
	}
	video.ID = id

	logger.Log.Info("video published", zap.String("video_id", id.Hex()), zap.String("owner", ownerID))
	return &video, nil
}

// Get enriched single video, every fetch counts a view and lands in the
// requester's watch history
func (s *videoUseCase) Get(ctx context.Context, videoID, viewerID string) (*domain.VideoDetail, error) {
	vid, err := pkg.ParseID(videoID)
	if err != nil {
		return nil, err
	}
	viewer, err := pkg.ParseID(viewerID)
	if err != nil {
		return nil, err
	}

	detail, err := s.videoRepo.Detail(ctx, vid, viewer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errprocess.SetCode(fiber.StatusNotFound, "Video not found")
		}
		return nil, errprocess.Set(fmt.Sprintf("load video failed : %v", err))
	}

	if err := s.videoRepo.IncrementViews(ctx, vid); err != nil {
		logger.Log.Warn("increment views failed", zap.String("video_id", videoID), zap.Error(err))
	}
	if err := s.userRepo.AddWatchHistory(ctx, viewer, vid); err != nil {
		logger.Log.Warn("append watch history failed", zap.String("video_id", videoID), zap.Error(err))
	}

	return detail, nil
}

// Update blank title/description keep the stored values
func (s *videoUseCase) Update(ctx context.Context, videoID, ownerID string, req domain.UpdateReq) (*domain.Video, error) {
	video, err := s.ownedVideo(ctx, videoID, ownerID, "update")
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}

	oldThumbnail := ""
	if req.Thumbnail != nil {
		thumbObject := fmt.Sprintf("thumbnails/%s%s", uuid.New().String(), filepath.Ext(req.Thumbnail.FileName))
		if err := s.media.UploadReader(ctx, thumbObject, req.Thumbnail.File, req.Thumbnail.Size, req.Thumbnail.ContentType); err != nil {
			return nil, errprocess.SetCode(fiber.StatusInternalServerError,
				fmt.Sprintf("fileName[%s] upload to media store failed : %v", req.Thumbnail.FileName, err))
		}
		fields["thumbnail"] = s.media.ObjectURL(thumbObject)
		oldThumbnail = video.Thumbnail
	}

	if len(fields) > 0 {
		if err := s.videoRepo.UpdateFields(ctx, video.ID, fields); err != nil {
			return nil, errprocess.Set(fmt.Sprintf("update video failed : %v", err))
		}
	}

	if oldThumbnail != "" {
		s.removeStored(oldThumbnail)
	}

	updated, err := s.videoRepo.GetByID(ctx, video.ID)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("reload video failed : %v", err))
	}
	return updated, nil
}

// Delete media objects are removed best effort, failures only logged
func (s *videoUseCase) Delete(ctx context.Context, videoID, ownerID string) error {
	video, err := s.ownedVideo(ctx, videoID, ownerID, "delete")
	if err != nil {
		return err
	}

	if err := s.videoRepo.Delete(ctx, video.ID); err != nil {
		return errprocess.Set(fmt.Sprintf("delete video failed : %v", err))
	}

	s.removeStored(video.VideoFile)
	s.removeStored(video.Thumbnail)

	logger.Log.Info("video deleted", zap.String("video_id", videoID))
	return nil
}

func (s *videoUseCase) TogglePublish(ctx context.Context, videoID, ownerID string) (*domain.Video, error) {
	video, err := s.ownedVideo(ctx, videoID, ownerID, "modify")
	if err != nil {
		return nil, err
	}

	if err := s.videoRepo.UpdateFields(ctx, video.ID, bson.M{"is_published": !video.IsPublished}); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("toggle publish failed : %v", err))
	}

	video.IsPublished = !video.IsPublished
	return video, nil
}

func (s *videoUseCase) ByChannel(ctx context.Context, username string) ([]domain.VideoView, error) {
	name := strings.ToLower(strings.TrimSpace(username))
	owner, err := s.userRepo.Find(ctx, &userdomain.UserQuery{Username: &name})
	if err != nil {
		return nil, errprocess.SetCode(fiber.StatusNotFound, "Channel does not exist")
	}

	videos, err := s.videoRepo.ByOwner(ctx, owner.ID)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list channel videos failed : %v", err))
	}
	return videos, nil
}

func (s *videoUseCase) ownedVideo(ctx context.Context, videoID, ownerID, action string) (*domain.Video, error) {
	vid, err := pkg.ParseID(videoID)
	if err != nil {
		return nil, err
	}
	owner, err := pkg.ParseID(ownerID)
	if err != nil {
		return nil, err
	}

	video, err := s.videoRepo.GetByID(ctx, vid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errprocess.SetCode(fiber.StatusNotFound, "Video not found")
		}
		return nil, errprocess.Set(fmt.Sprintf("load video failed : %v", err))
	}

	if video.Owner != owner {
		return nil, errprocess.SetCode(fiber.StatusForbidden,
			fmt.Sprintf("You are not allowed to %s this video", action))
	}
	return video, nil
}

func (s *videoUseCase) removeStored(rawURL string) {
	objectName := database.ObjectNameFromURL(rawURL)
	if objectName == "" {
		return
	}
	if err := s.media.RemoveFile(context.Background(), objectName); err != nil {
		logger.Log.Warn("remove media object failed",
			zap.String("object", objectName), zap.Error(err))
	}
}
