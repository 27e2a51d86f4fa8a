package middleware

import (
	"academy/config"
	"academy/gateway"
	"academy/models"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// userLocalKey is where the authenticated user is parked for handlers.
const userLocalKey = "currentUser"

// AuthRequired guards protected routes. It resolves the session token to
// a user through the gateway once per request; on failure the caller gets
// a 401 with a login redirect hint. On success the sliding cookie window
// is refreshed and the user is handed to the route via locals.
func AuthRequired(gw gateway.ContentGateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := SessionToken(c)
		if token == "" {
			return unauthenticated(c)
		}

		ctx, cancel := RequestContext(c, token)
		defer cancel()

		user, err := gw.CurrentUser(ctx, token)
		if err != nil {
			return unauthenticated(c)
		}

		c.Locals(userLocalKey, user)
		SetSessionCookie(c, token)
		return c.Next()
	}
}

// OptionalAuth resolves the session to a user when a valid token is
// present but lets anonymous callers through. Used by the catalog
// listing, where anonymous access is a policy decision for the handler.
func OptionalAuth(gw gateway.ContentGateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := SessionToken(c)
		if token == "" {
			return c.Next()
		}

		ctx, cancel := RequestContext(c, token)
		defer cancel()

		if user, err := gw.CurrentUser(ctx, token); err == nil {
			c.Locals(userLocalKey, user)
			SetSessionCookie(c, token)
		}
		return c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired/OptionalAuth,
// or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

// RequestContext derives a gateway call context from the request: the
// configured timeout plus the caller's bearer token for the networked
// backend. Callers must invoke the returned cancel func.
func RequestContext(c *fiber.Ctx, token string) (context.Context, context.CancelFunc) {
	timeout := time.Duration(config.AppConfig.RequestTimeout) * time.Second
	ctx, cancel := context.WithTimeout(c.Context(), timeout)
	if token != "" {
		ctx = gateway.WithToken(ctx, token)
	}
	return ctx, cancel
}

func unauthenticated(c *fiber.Ctx) error {
	return JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", fiber.Map{
		"redirect": "/login",
	})
}
