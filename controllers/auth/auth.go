package authController

import (
	"academy/config"
	"academy/database"
	"academy/gateway"
	"academy/middleware"
	"academy/models"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Login authenticates against the content backend and opens a session.
func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	ctx, cancel := middleware.RequestContext(c, "")
	defer cancel()

	user, token, err := gateway.Active.Login(ctx, reqData.Identifier, reqData.Password)
	if err != nil {
		if errors.Is(err, gateway.ErrInvalidCredentials) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		}
		var reqErr *gateway.RequestFailedError
		if errors.As(err, &reqErr) {
			log.Printf("Login request to content API failed: %v", reqErr)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Login failed: "+reqErr.StatusText, nil)
		}
		log.Printf("Error logging in %s: %v", reqData.Identifier, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log in!", nil)
	}

	middleware.SetSessionCookie(c, token)
	recordAudit(c, user.ID, "LOGIN")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user": user,
		"jwt":  token,
	})
}

// Register creates an account with the role supplied at signup. The role
// is fixed at creation; there is no reassignment flow.
func Register(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	ctx, cancel := middleware.RequestContext(c, "")
	defer cancel()

	user, token, err := gateway.Active.Register(ctx, reqData.Username, reqData.Email, reqData.Password, models.Role(reqData.Role))
	if err != nil {
		var reqErr *gateway.RequestFailedError
		if errors.As(err, &reqErr) {
			log.Printf("Registration request to content API failed: %v", reqErr)
			message := "Registration failed: " + reqErr.StatusText
			if reqErr.Message != "" {
				message = "Registration failed: " + reqErr.Message
			}
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, message, nil)
		}
		log.Printf("Error registering %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	middleware.SetSessionCookie(c, token)
	recordAudit(c, user.ID, "REGISTER")

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user": user,
		"jwt":  token,
	})
}

// Me returns the user resolved by the auth guard.
func Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
}

// Logout clears the session cookie. The token itself stays opaque; there
// is nothing server-side to revoke.
func Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}

// recordAudit writes a login-audit row. Audit failures are logged and
// never block the auth flow.
func recordAudit(c *fiber.Ctx, userID uint, event string) {
	db := database.Database.Db
	if db == nil {
		return
	}

	backend := "strapi"
	if config.AppConfig.UseMock {
		backend = "mock"
	}

	audit := models.LoginAudit{
		SessionID:    uuid.NewString(),
		UserID:       userID,
		Event:        event,
		Backend:      backend,
		IPAddress:    c.IP(),
		ForwardedFor: c.Get("X-Forwarded-For"),
		Device:       c.Get("User-Agent"),
	}

	if err := db.Create(&audit).Error; err != nil {
		log.Printf("Error saving login audit for user %d: %v", userID, err)
	}
}
