package handlers

import (
	"video_library_service/internal/playlist/app"
	errprocess "video_library_service/pkg/err"
	"video_library_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// PlaylistHandler handle playlist HTTP requests
type PlaylistHandler struct {
	PlaylistUseCase app.PlaylistUseCase
}

// NewPlaylistHandler create a new PlaylistHandler
func NewPlaylistHandler(playlistUseCase app.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{
		PlaylistUseCase: playlistUseCase,
	}
}

// Create make a new playlist
// @Summary Create a playlist
// @Description Title is unique per owner
// @Tags Playlists
// @Accept json
// @Produce json
// @Success 201 {object} SuccessRes "Playlist created successfully"
// @Failure 400 {object} FailureRes "Title and description are required"
// @Failure 409 {object} FailureRes "Playlist with this name already exists"
// @Router /api/v1/playlist [post]
func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	type request struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.SetCode(fiber.StatusBadRequest, "invalid request")
	}
	if req.Title == "" || req.Description == "" {
		return errprocess.SetCode(fiber.StatusBadRequest, "Title and description are required")
	}

	ownerID, _ := c.Locals(middlewares.TokenUserID).(string)
	playlist, err := h.PlaylistUseCase.Create(c.UserContext(), ownerID, req.Title, req.Description)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, playlist, "Playlist created successfully")
}

// ListByUser list a user's playlists
// @Summary List user playlists
// @Description Playlists owned by the user with resolved videos
// @Tags Playlists
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} SuccessRes "Playlists fetched successfully"
// @Router /api/v1/playlist/user/{user_id} [get]
func (h *PlaylistHandler) ListByUser(c *fiber.Ctx) error {
	playlists, err := h.PlaylistUseCase.ListByUser(c.UserContext(), c.Params("user_id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, playlists, "Playlists fetched successfully")
}

// Get return one playlist with resolved videos
// @Summary Get a playlist
// @Description Playlist view with owner profile and video details
// @Tags Playlists
// @Produce json
// @Param playlist_id path string true "Playlist ID"
// @Success 200 {object} SuccessRes "Playlist fetched successfully"
// @Failure 404 {object} FailureRes "Playlist not found"
// @Router /api/v1/playlist/{playlist_id} [get]
func (h *PlaylistHandler) Get(c *fiber.Ctx) error {
	playlist, err := h.PlaylistUseCase.GetByID(c.UserContext(), c.Params("playlist_id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, playlist, "Playlist fetched successfully")
}

// AddVideo append a video to a playlist
// @Summary Add video to playlist
// @Description Owner only, rejects duplicates
// @Tags Playlists
// @Produce json
// @Param playlist_id path string true "Playlist ID"
// @Param video_id path string true "Video ID"
// @Success 200 {object} SuccessRes "Video added to playlist"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Video already in this playlist"
// @Router /api/v1/playlist/add/{playlist_id}/{video_id} [patch]
func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	requesterID, _ := c.Locals(middlewares.TokenUserID).(string)
	playlist, err := h.PlaylistUseCase.AddVideo(c.UserContext(),
		c.Params("playlist_id"), c.Params("video_id"), requesterID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, playlist, "Video added to playlist")
}

// RemoveVideo drop a video from a playlist
// @Summary Remove video from playlist
// @Description Owner only, rejects videos not in the playlist
// @Tags Playlists
// @Produce json
// @Param playlist_id path string true "Playlist ID"
// @Param video_id path string true "Video ID"
// @Success 200 {object} SuccessRes "Video removed from playlist"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Video not found in this playlist"
// @Router /api/v1/playlist/remove/{playlist_id}/{video_id} [patch]
func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	requesterID, _ := c.Locals(middlewares.TokenUserID).(string)
	playlist, err := h.PlaylistUseCase.RemoveVideo(c.UserContext(),
		c.Params("playlist_id"), c.Params("video_id"), requesterID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, playlist, "Video removed from playlist")
}

// Update change playlist title or description
// @Summary Update a playlist
// @Description Owner only metadata edit
// @Tags Playlists
// @Accept json
// @Produce json
// @Param playlist_id path string true "Playlist ID"
// @Success 200 {object} SuccessRes "Playlist updated successfully"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Playlist not found"
// @Router /api/v1/playlist/{playlist_id} [patch]
func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	type request struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return errprocess.SetCode(fiber.StatusBadRequest, "invalid request")
	}

	requesterID, _ := c.Locals(middlewares.TokenUserID).(string)
	playlist, err := h.PlaylistUseCase.Update(c.UserContext(),
		c.Params("playlist_id"), requesterID, req.Title, req.Description)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, playlist, "Playlist updated successfully")
}

// Delete remove a playlist
// @Summary Delete a playlist
// @Description Owner only delete, videos themselves are kept
// @Tags Playlists
// @Produce json
// @Param playlist_id path string true "Playlist ID"
// @Success 200 {object} SuccessRes "Playlist deleted successfully"
// @Failure 403 {object} FailureRes "Not the owner"
// @Failure 404 {object} FailureRes "Playlist not found"
// @Router /api/v1/playlist/{playlist_id} [delete]
func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	requesterID, _ := c.Locals(middlewares.TokenUserID).(string)
	if err := h.PlaylistUseCase.Delete(c.UserContext(), c.Params("playlist_id"), requesterID); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{}, "Playlist deleted successfully")
}
