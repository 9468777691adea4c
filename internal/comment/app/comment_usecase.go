package app

import (
	"context"
	"fmt"

	"video_library_service/internal/comment/domain"
	"video_library_service/internal/comment/repository"
	videorepo "video_library_service/internal/video/repository"
	"video_library_service/pkg"
	errprocess "video_library_service/pkg/err"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentUseCase application services for video comments
type CommentUseCase interface {
	ListByVideo(ctx context.Context, videoID, viewerID string, page, limit int64) ([]domain.CommentView, error)
	Add(ctx context.Context, videoID, ownerID, content string) (*domain.Comment, error)
	Update(ctx context.Context, commentID, ownerID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, commentID, ownerID string) error
}

type commentUseCase struct {
	commentRepo repository.CommentRepository
	videoRepo   videorepo.VideoRepository
}

// NewCommentUseCase create a new CommentUseCase
func NewCommentUseCase(commentRepo repository.CommentRepository, videoRepo videorepo.VideoRepository) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

func (c *commentUseCase) ListByVideo(ctx context.Context, videoID, viewerID string, page, limit int64) ([]domain.CommentView, error) {
	vid, err := pkg.ParseID(videoID)
	if err != nil {
		return nil, err
	}
	viewer, err := pkg.ParseID(viewerID)
	if err != nil {
		return nil, err
	}

	if _, err := c.videoRepo.GetByID(ctx, vid); err != nil {
		return nil, errprocess.SetCode(fiber.StatusNotFound, "Video not found")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	comments, err := c.commentRepo.ByVideo(ctx, vid, viewer, page, limit)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("list comments failed : %v", err))
	}
	return comments, nil
}

func (c *commentUseCase) Add(ctx context.Context, videoID, ownerID, content string) (*domain.Comment, error) {
	vid, err := pkg.ParseID(videoID)
	if err != nil {
		return nil, err
	}
	owner, err := pkg.ParseID(ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := c.videoRepo.GetByID(ctx, vid); err != nil {
		return nil, errprocess.SetCode(fiber.StatusNotFound, "Video not found")
	}

	comment := domain.Comment{
		Content: content,
		Video:   vid,
		Owner:   owner,
	}
	id, err := c.commentRepo.Create(ctx, &comment)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("create comment failed : %v", err))
	}
	comment.ID = id
	return &comment, nil
}

func (c *commentUseCase) Update(ctx context.Context, commentID, ownerID, content string) (*domain.Comment, error) {
	comment, err := c.ownedComment(ctx, commentID, ownerID, "update")
	if err != nil {
		return nil, err
	}

	if err := c.commentRepo.UpdateContent(ctx, comment.ID, content); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("update comment failed : %v", err))
	}
	comment.Content = content
	return comment, nil
}

func (c *commentUseCase) Delete(ctx context.Context, commentID, ownerID string) error {
	comment, err := c.ownedComment(ctx, commentID, ownerID, "delete")
	if err != nil {
		return err
	}

	if err := c.commentRepo.Delete(ctx, comment.ID); err != nil {
		return errprocess.Set(fmt.Sprintf("delete comment failed : %v", err))
	}
	return nil
}

func (c *commentUseCase) ownedComment(ctx context.Context, commentID, ownerID, action string) (*domain.Comment, error) {
	cid, err := pkg.ParseID(commentID)
	if err != nil {
		return nil, err
	}
	owner, err := pkg.ParseID(ownerID)
	if err != nil {
		return nil, err
	}

	comment, err := c.commentRepo.GetByID(ctx, cid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errprocess.SetCode(fiber.StatusNotFound, "Comment not found")
		}
		return nil, errprocess.Set(fmt.Sprintf("load comment failed : %v", err))
	}

	if comment.Owner != owner {
		return nil, errprocess.SetCode(fiber.StatusForbidden,
			fmt.Sprintf("You are not allowed to %s this comment", action))
	}
	return comment, nil
}
