package handlers

import (
	"context"
	"time"

	"video_library_service/internal/user/app"
	"video_library_service/internal/user/domain"
	"video_library_service/pkg/database"
	errprocess "video_library_service/pkg/err"
	"video_library_service/pkg/logger"
	"video_library_service/pkg/middlewares"
	"video_library_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserHandler handle account and channel HTTP requests
type UserHandler struct {
	UserUseCase app.UserUseCase
}

// NewUserHandler create a new UserHandler
func NewUserHandler(userUseCase app.UserUseCase) *UserHandler {
	return &UserHandler{
		UserUseCase: userUseCase,
	}
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.CookieAccessToken,
		Value:    accessToken,
		Expires:  time.Now().Add(token.AccessTTL()),
		HTTPOnly: true,
		Secure:   true,
	})
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.CookieRefreshToken,
		Value:    refreshToken,
		Expires:  time.Now().Add(token.RefreshTTL()),
		HTTPOnly: true,
		Secure:   true,
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: middlewares.CookieAccessToken, Value: "", Expires: expired, HTTPOnly: true, Secure: true})
	c.Cookie(&fiber.Cookie{Name: middlewares.CookieRefreshToken, Value: "", Expires: expired, HTTPOnly: true, Secure: true})
}

// Register create a new account
// @Summary Register a new user
// @Description Create an account with avatar and optional cover image
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param fullname formData string true "Full name"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} SuccessRes "User registered successfully"
// @Failure 400 {object} FailureRes "Missing fields"
// @Failure 409 {object} FailureRes "User already exists"
// @Router /api/v1/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	fullname := c.FormValue("fullname")
	password := c.FormValue("password")
	if username == "" || email == "" || fullname == "" || password == "" {
		return errprocess.SetCode(fiber.StatusBadRequest, "All fields are required")
	}

	avatarHeader, err := c.FormFile("avatar")
	if err != nil {
		return errprocess.SetCode(fiber.StatusBadRequest, "Avatar file is required")
	}
	avatar, avatarFile, err := formUpload(avatarHeader)
	if err != nil {
		return err
	}
	defer avatarFile.Close()

	req := domain.RegisterReq{
		Username: username,
		Email:    email,
		Fullname: fullname,
		Password: password,
		Avatar:   *avatar,
	}
	if coverHeader, err := c.FormFile("coverImage"); err == nil {
		cover, coverFile, err := formUpload(coverHeader)
		if err != nil {
			return err
		}
		defer coverFile.Close()
		req.CoverImage = cover
	}

	logger.Log.Debug("Register request", zap.String("username", username), zap.String("email", email))

	user, err := h.UserUseCase.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, user, "User registered successfully")
}

// Login authenticate and issue tokens
// @Summary User login
// @Description Login with username or email plus password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body object true "Login payload"
// @Success 200 {object} SuccessRes "User logged in successfully"
// @Failure 401 {object} FailureRes "Invalid user credentials"
// @Failure 404 {object} FailureRes "User does not exist"
// @Router /api/v1/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	type request struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.SetCode(fiber.StatusBadRequest, "invalid request")
	}
	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" || req.Password == "" {
		return errprocess.SetCode(fiber.StatusBadRequest, "Username or email is required")
	}

	logger.Log.Debug("Login request", zap.String("identifier", identifier))

	res, err := h.UserUseCase.Login(c.UserContext(), identifier, req.Password)
	if err != nil {
		return err
	}

	setAuthCookies(c, res.AccessToken, res.RefreshToken)
	return respond(c, fiber.StatusOK, res, "User logged in successfully")
}

// Logout clear the session
// @Summary User logout
// @Description Revoke the refresh token and clear auth cookies
// @Tags Users
// @Produce json
// @Success 200 {object} SuccessRes "User logged out"
// @Failure 401 {object} FailureRes "Unauthorized request"
// @Router /api/v1/users/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	if err := h.UserUseCase.Logout(c.UserContext(), userID); err != nil {
		return err
	}
	clearAuthCookies(c)
	return respond(c, fiber.StatusOK, fiber.Map{}, "User logged out")
}

// RefreshToken rotate the token pair
// @Summary Refresh access token
// @Description Exchange a valid refresh token for a new token pair
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} SuccessRes "Access token refreshed"
// @Failure 401 {object} FailureRes "Invalid refresh token"
// @Router /api/v1/users/refresh-token [post]
func (h *UserHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies(middlewares.CookieRefreshToken)
	if refreshToken == "" {
		type request struct {
			RefreshToken string `json:"refreshToken"`
		}
		var req request
		if err := c.BodyParser(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		return errprocess.SetCode(fiber.StatusUnauthorized, "Unauthorized request")
	}

	pair, err := h.UserUseCase.RefreshTokens(c.UserContext(), refreshToken)
	if err != nil {
		return err
	}

	setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	return respond(c, fiber.StatusOK, pair, "Access token refreshed")
}

// ChangePassword update the current password
// @Summary Change password
// @Description Verify the old password then store the new one
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} SuccessRes "Password changed successfully"
// @Failure 400 {object} FailureRes "Passwords do not match"
// @Failure 401 {object} FailureRes "Invalid old password"
// @Router /api/v1/users/change-password [post]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	type request struct {
		OldPassword     string `json:"oldPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.SetCode(fiber.StatusBadRequest, "invalid request")
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return errprocess.SetCode(fiber.StatusBadRequest, "Old and new password are required")
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.NewPassword {
		return errprocess.SetCode(fiber.StatusBadRequest, "Passwords do not match")
	}

	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	if err := h.UserUseCase.ChangePassword(c.UserContext(), userID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{}, "Password changed successfully")
}

// CurrentUser return the authenticated account
// @Summary Get current user
// @Description Return the account bound to the access token
// @Tags Users
// @Produce json
// @Success 200 {object} SuccessRes "Current user fetched successfully"
// @Failure 401 {object} FailureRes "Unauthorized request"
// @Router /api/v1/users/get-user [get]
func (h *UserHandler) CurrentUser(c *fiber.Ctx) error {
	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	user, err := h.UserUseCase.GetUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, user, "Current user fetched successfully")
}

// UpdateAccount change email and fullname
// @Summary Update account details
// @Description Update email and full name, both fields required
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} SuccessRes "Account details updated"
// @Failure 400 {object} FailureRes "All fields are required"
// @Failure 409 {object} FailureRes "User with email already exists"
// @Router /api/v1/users/update-account [patch]
func (h *UserHandler) UpdateAccount(c *fiber.Ctx) error {
	type request struct {
		Email    string `json:"email"`
		Fullname string `json:"fullname"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.SetCode(fiber.StatusBadRequest, "invalid request")
	}
	if req.Email == "" || req.Fullname == "" {
		return errprocess.SetCode(fiber.StatusBadRequest, "All fields are required")
	}

	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	user, err := h.UserUseCase.UpdateDetails(c.UserContext(), userID, req.Email, req.Fullname)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, user, "Account details updated")
}

// UpdateAvatar replace the avatar image
// @Summary Update avatar
// @Description Upload a new avatar and drop the previous one
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} SuccessRes "Avatar updated"
// @Failure 400 {object} FailureRes "Avatar file is required"
// @Router /api/v1/users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *fiber.Ctx) error {
	return h.updateImage(c, "avatar", "Avatar file is required", "Avatar updated",
		h.UserUseCase.UpdateAvatar)
}

// UpdateCoverImage replace the cover image
// @Summary Update cover image
// @Description Upload a new cover image and drop the previous one
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} SuccessRes "Cover image updated"
// @Failure 400 {object} FailureRes "Cover image file is required"
// @Router /api/v1/users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *fiber.Ctx) error {
	return h.updateImage(c, "coverImage", "Cover image file is required", "Cover image updated",
		h.UserUseCase.UpdateCoverImage)
}

func (h *UserHandler) updateImage(c *fiber.Ctx, field, missingMsg, okMsg string,
	update func(ctx context.Context, userID string, file database.FileUpload) (*domain.User, error),
) error {
	header, err := c.FormFile(field)
	if err != nil {
		return errprocess.SetCode(fiber.StatusBadRequest, missingMsg)
	}
	upload, file, err := formUpload(header)
	if err != nil {
		return err
	}
	defer file.Close()

	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	user, err := update(c.UserContext(), userID, *upload)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, user, okMsg)
}

// Channel return a channel profile with subscription counts
// @Summary Get channel profile
// @Description Channel view by username with subscriber counts
// @Tags Users
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} SuccessRes "Channel fetched successfully"
// @Failure 404 {object} FailureRes "Channel does not exist"
// @Router /api/v1/users/c/{username} [get]
func (h *UserHandler) Channel(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return errprocess.SetCode(fiber.StatusBadRequest, "Username is required")
	}

	viewerID, _ := c.Locals(middlewares.TokenUserID).(string)
	channel, err := h.UserUseCase.GetChannel(c.UserContext(), username, viewerID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, channel, "Channel fetched successfully")
}

// WatchHistory return the watched videos with owner profiles
// @Summary Get watch history
// @Description Videos the user has watched, most recent last
// @Tags Users
// @Produce json
// @Success 200 {object} SuccessRes "Watch history fetched successfully"
// @Failure 401 {object} FailureRes "Unauthorized request"
// @Router /api/v1/users/history [get]
func (h *UserHandler) WatchHistory(c *fiber.Ctx) error {
	userID, _ := c.Locals(middlewares.TokenUserID).(string)
	videos, err := h.UserUseCase.WatchHistory(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, videos, "Watch history fetched successfully")
}
