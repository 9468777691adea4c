package middlewares

import (
	"strings"

	errprocess "video_library_service/pkg/err"
	t_token "video_library_service/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const (
	// CookieAccessToken access token cookie name
	CookieAccessToken = "accessToken"

	// CookieRefreshToken refresh token cookie name
	CookieRefreshToken = "refreshToken"

	// TokenUserID get user id from token, set c.locals name
	TokenUserID = "UserID"
)

// JWTMiddleware validates the access token from the Authorization
// header or the accessToken cookie
func JWTMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Get(fiber.HeaderAuthorization)
		tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

		if tokenStr == "" {
			tokenStr = c.Cookies(CookieAccessToken)
		}

		if tokenStr == "" {
			return errprocess.SetCode(fiber.StatusUnauthorized, "Unauthorized request")
		}

		claims, err := t_token.ParseAccessJWTWrapper(tokenStr)
		if err != nil {
			return errprocess.SetCode(fiber.StatusUnauthorized, "Invalid access token")
		}

		c.Locals(TokenUserID, claims.UserID)

		return c.Next()
	}
}
