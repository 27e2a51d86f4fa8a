package middleware

import (
	"academy/config"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the bearer token.
const SessionCookieName = "jwt"

// SessionTTL is the cookie's sliding expiry window.
const SessionTTL = 7 * 24 * time.Hour

// SetSessionCookie persists the bearer token in the session cookie. The
// expiry is refreshed on every call, giving the 7-day sliding window.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(SessionTTL),
		Path:     "/",
		Secure:   config.AppConfig.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// SessionToken returns the caller's bearer token from the session cookie,
// falling back to the Authorization header, or "" when neither is set.
func SessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookieName); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}
	return ""
}

// ClearSessionCookie removes the session cookie on logout.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		Secure:   config.AppConfig.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
