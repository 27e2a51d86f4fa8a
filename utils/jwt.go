package utils

import (
	"academy/config"
	"academy/models"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionTokenTTL matches the session cookie's 7-day window.
const SessionTokenTTL = 7 * 24 * time.Hour

// GenerateSessionToken mints a signed session token for the user.
func GenerateSessionToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     string(user.Role),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(SessionTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// ParseSessionToken validates a session token and returns the user id it
// was minted for.
func ParseSessionToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid user id in token")
	}

	return uint(userID), nil
}
