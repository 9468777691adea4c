package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims structure for custom claims in JWT
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Secret keys for JWT signing and validation, Configure overrides them
var (
	AccessSecret  = []byte("access_secret_key")
	RefreshSecret = []byte("refresh_secret_key")
	accessTTL     = 15 * time.Minute
	refreshTTL    = 10 * 24 * time.Hour
)

// Configure override signing settings from config
func Configure(accessSecret, refreshSecret string, access, refresh time.Duration) {
	if accessSecret != "" {
		AccessSecret = []byte(accessSecret)
	}
	if refreshSecret != "" {
		RefreshSecret = []byte(refreshSecret)
	}
	if access > 0 {
		accessTTL = access
	}
	if refresh > 0 {
		refreshTTL = refresh
	}
}

// AccessTTL get the access token lifetime
func AccessTTL() time.Duration {
	return accessTTL
}

// RefreshTTL get the refresh token lifetime
func RefreshTTL() time.Duration {
	return refreshTTL
}

// GenerateAccessJWT generates a short lived access token
func GenerateAccessJWT(userID, issuer string) (string, error) {
	return generate(userID, issuer, AccessSecret, accessTTL)
}

// GenerateRefreshJWT generates a long lived refresh token
func GenerateRefreshJWT(userID, issuer string) (string, error) {
	return generate(userID, issuer, RefreshSecret, refreshTTL)
}

func generate(userID, issuer string, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAccessJWT parses an access token and extracts the Claims
func ParseAccessJWT(tokenStr string) (*Claims, error) {
	return parse(tokenStr, AccessSecret)
}

// ParseRefreshJWT parses a refresh token and extracts the Claims
func ParseRefreshJWT(tokenStr string) (*Claims, error) {
	return parse(tokenStr, RefreshSecret)
}

func parse(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Check if the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
