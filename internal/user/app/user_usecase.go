package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"video_library_service/internal/user/domain"
	"video_library_service/internal/user/repository"
	videodomain "video_library_service/internal/video/domain"
	"video_library_service/pkg"
	"video_library_service/pkg/database"
	"video_library_service/pkg/encrypt"
	errprocess "video_library_service/pkg/err"
	"video_library_service/pkg/logger"
	token "video_library_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserUseCase application services for accounts and channels
type UserUseCase interface {
	Register(ctx context.Context, req domain.RegisterReq) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (*domain.LoginRes, error)
	Logout(ctx context.Context, userID string) error
	RefreshTokens(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateDetails(ctx context.Context, userID, email, fullname string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID string, file database.FileUpload) (*domain.User, error)
	UpdateCoverImage(ctx context.Context, userID string, file database.FileUpload) (*domain.User, error)
	GetChannel(ctx context.Context, username, viewerID string) (*domain.ChannelView, error)
	WatchHistory(ctx context.Context, userID string) ([]videodomain.VideoView, error)
}

type userUseCase struct {
	userRepo repository.UserRepository
	media    database.MinIOClientRepo
}

// NewUserUseCase create a new UserUseCase
func NewUserUseCase(userRepo repository.UserRepository, media database.MinIOClientRepo) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		media:    media,
	}
}

func (u *userUseCase) storeImage(ctx context.Context, file database.FileUpload) (string, error) {
	objectName := fmt.Sprintf("images/%s%s", uuid.New().String(), filepath.Ext(file.FileName))
	if err := u.media.UploadReader(ctx, objectName, file.File, file.Size, file.ContentType); err != nil {
		return "", errprocess.SetCode(fiber.StatusInternalServerError,
			fmt.Sprintf("fileName[%s] upload to media store failed : %v", file.FileName, err))
	}
	return u.media.ObjectURL(objectName), nil
}

func (u *userUseCase) removeStored(rawURL string) {
	objectName := database.ObjectNameFromURL(rawURL)
	if objectName == "" {
		return
	}
	if err := u.media.RemoveFile(context.Background(), objectName); err != nil {
		logger.Log.Warn("remove old media object failed",
			zap.String("object", objectName), zap.Error(err))
	}
}

// Register create the account, dup username/email is a conflict
func (u *userUseCase) Register(ctx context.Context, req domain.RegisterReq) (*domain.User, error) {
	avatarURL, err := u.storeImage(ctx, req.Avatar)
	if err != nil {
		return nil, err
	}

	coverURL := ""
	if req.CoverImage != nil {
		if coverURL, err = u.storeImage(ctx, *req.CoverImage); err != nil {
			return nil, err
		}
	}

	pw, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("hash password failed : %v", err))
	}

	user := domain.User{
		Username:   strings.ToLower(strings.TrimSpace(req.Username)),
		Email:      req.Email,
		Fullname:   req.Fullname,
		Password:   pw,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	}

	id, err := u.userRepo.Create(ctx, &user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errprocess.SetCode(fiber.StatusConflict, "User with email or username already exists")
		}
		return nil, errprocess.Set(fmt.Sprintf("create user failed : %v", err))
	}
	user.ID = id

	logger.Log.Info("user registered", zap.String("username", user.Username))
	return &user, nil
}

// Login issue the token pair and persist the refresh token
func (u *userUseCase) Login(ctx context.Context, identifier, password string) (*domain.LoginRes, error) {
	user, err := u.userRepo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, errprocess.SetCode(fiber.StatusNotFound, "User does not exist")
	}

	if err = user.IsPasswordMatch(password); err != nil {
		return nil, errprocess.SetCode(fiber.StatusUnauthorized, "Invalid user credentials")
	}

	accessToken, err := token.GenerateAccessJWTWrapper(user.ID.Hex())
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("generate access token failed : %v", err))
	}
	refreshToken, err := token.GenerateRefreshJWTWrapper(user.ID.Hex())
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("generate refresh token failed : %v", err))
	}

	if err := u.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("persist refresh token failed : %v", err))
	}

	return &domain.LoginRes{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout drop the stored refresh token
func (u *userUseCase) Logout(ctx context.Context, userID string) error {
	oid, err := pkg.ParseID(userID)
	if err != nil {
		return err
	}
	if err := u.userRepo.SetRefreshToken(ctx, oid, ""); err != nil {
		return errprocess.Set(fmt.Sprintf("unset refresh token failed : %v", err))
	}
	return nil
}

// RefreshTokens rotate the pair when the presented token matches the stored one
func (u *userUseCase) RefreshTokens(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := token.ParseRefreshJWTWrapper(refreshToken)
	if err != nil {
		return nil, errprocess.SetCode(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	oid, err := pkg.ParseID(claims.UserID)
	if err != nil {
		return nil, errprocess.SetCode(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	user, err := u.userRepo.Find(ctx, &domain.UserQuery{ID: &oid})
	if err != nil {
		return nil, errprocess.SetCode(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	if user.RefreshToken != refreshToken {
		return nil, errprocess.SetCode(fiber.StatusUnauthorized, "Refresh token is expired or used")
	}

	accessToken, err := token.GenerateAccessJWTWrapper(user.ID.Hex())
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("generate access token failed : %v", err))
	}
	newRefresh, err := token.GenerateRefreshJWTWrapper(user.ID.Hex())
	if err != nil {
		return nil, errprocess.Set(fmt.Sprintf("generate refresh token failed : %v", err))
	}

	if err := u.userRepo.SetRefreshToken(ctx, user.ID, newRefresh); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("persist refresh token failed : %v", err))
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: newRefresh}, nil
}

// ChangePassword verify the old password before storing the new hash
func (u *userUseCase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	oid, err := pkg.ParseID(userID)
	if err != nil {
		return err
	}

	user, err := u.userRepo.Find(ctx, &domain.UserQuery{ID: &oid})
	if err != nil {
		return errprocess.SetCode(fiber.StatusNotFound, "User does not exist")
	}

	if err := user.IsPasswordMatch(oldPassword); err != nil {
		return errprocess.SetCode(fiber.StatusUnauthorized, "Invalid old password")
	}

	pw, err := encrypt.HashPassword(newPassword)
	if err != nil {
		return errprocess.Set(fmt.Sprintf("hash password failed : %v", err))
	}

	if err := u.userRepo.UpdateFields(ctx, oid, bson.M{"password": pw}); err != nil {
		return errprocess.Set(fmt.Sprintf("update password failed : %v", err))
	}
	return nil
}

func (u *userUseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	oid, err := pkg.ParseID(userID)
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.Find(ctx, &domain.UserQuery{ID: &oid})
	if err != nil {
		return nil, errprocess.SetCode(fiber.StatusNotFound, "User does not exist")
	}
	return user, nil
}

func (u *userUseCase) UpdateDetails(ctx context.Context, userID, email, fullname string) (*domain.User, error) {
	oid, err := pkg.ParseID(userID)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateFields(ctx, oid, bson.M{"email": email, "fullname": fullname}); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errprocess.SetCode(fiber.StatusNotFound, "User does not exist")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, errprocess.SetCode(fiber.StatusConflict, "User with email already exists")
		}
		return nil, errprocess.Set(fmt.Sprintf("update details failed : %v", err))
	}

	return u.GetUser(ctx, userID)
}

// UpdateAvatar store the new image, the previous object is removed best effort
func (u *userUseCase) UpdateAvatar(ctx context.Context, userID string, file database.FileUpload) (*domain.User, error) {
	return u.updateImage(ctx, userID, file, "avatar")
}

// UpdateCoverImage store the new image, the previous object is removed best effort
func (u *userUseCase) UpdateCoverImage(ctx context.Context, userID string, file database.FileUpload) (*domain.User, error) {
	return u.updateImage(ctx, userID, file, "cover_image")
}

func (u *userUseCase) updateImage(ctx context.Context, userID string, file database.FileUpload, field string) (*domain.User, error) {
	oid, err := pkg.ParseID(userID)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.Find(ctx, &domain.UserQuery{ID: &oid})
	if err != nil {
		return nil, errprocess.SetCode(fiber.StatusNotFound, "User does not exist")
	}

	newURL, err := u.storeImage(ctx, file)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateFields(ctx, oid, bson.M{field: newURL}); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("update %s failed : %v", field, err))
	}

	oldURL := user.Avatar
	if field == "cover_image" {
		oldURL = user.CoverImage
	}
	if oldURL != "" {
		u.removeStored(oldURL)
	}

	return u.GetUser(ctx, userID)
}

func (u *userUseCase) GetChannel(ctx context.Context, username, viewerID string) (*domain.ChannelView, error) {
	viewer, err := pkg.ParseID(viewerID)
	if err != nil {
		return nil, err
	}

	channel, err := u.userRepo.ChannelView(ctx, strings.ToLower(strings.TrimSpace(username)), viewer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errprocess.SetCode(fiber.StatusNotFound, "Channel does not exist")
		}
		return nil, errprocess.Set(fmt.Sprintf("load channel failed : %v", err))
	}
	return channel, nil
}

func (u *userUseCase) WatchHistory(ctx context.Context, userID string) ([]videodomain.VideoView, error) {
	oid, err := pkg.ParseID(userID)
	if err != nil {
		return nil, err
	}

	videos, err := u.userRepo.WatchHistory(ctx, oid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errprocess.SetCode(fiber.StatusNotFound, "User does not exist")
		}
		return nil, errprocess.Set(fmt.Sprintf("load watch history failed : %v", err))
	}
	return videos, nil
}
