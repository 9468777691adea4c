package token

import "video_library_service/pkg/config"

// These variables are swapped out by tests.
var (
	GenerateAccessJWTFunc  = GenerateAccessJWT
	GenerateRefreshJWTFunc = GenerateRefreshJWT
	ParseAccessJWTFunc     = ParseAccessJWT
	ParseRefreshJWTFunc    = ParseRefreshJWT
)

// GenerateAccessJWTWrapper wrapper so usecase tests can mock token creation
func GenerateAccessJWTWrapper(userID string) (string, error) {
	return GenerateAccessJWTFunc(userID, config.EnvConfig.VideoLibrary)
}

// GenerateRefreshJWTWrapper wrapper so usecase tests can mock token creation
func GenerateRefreshJWTWrapper(userID string) (string, error) {
	return GenerateRefreshJWTFunc(userID, config.EnvConfig.VideoLibrary)
}

// ParseAccessJWTWrapper wrapper so usecase tests can mock token parsing
func ParseAccessJWTWrapper(t string) (*Claims, error) {
	return ParseAccessJWTFunc(t)
}

// ParseRefreshJWTWrapper wrapper so usecase tests can mock token parsing
func ParseRefreshJWTWrapper(t string) (*Claims, error) {
	return ParseRefreshJWTFunc(t)
}
