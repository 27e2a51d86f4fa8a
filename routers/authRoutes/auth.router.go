package authRoutes

import (
	authControllers "academy/controllers/auth"
	"academy/gateway"
	"academy/middleware"
	authValidators "academy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires the auth endpoints. Paths mirror the remote
// content API so the same client works against either backend.
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/local", authValidators.Login(), authControllers.Login)
	authGroup.Post("/local/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/logout", authControllers.Logout)

	app.Get("/users/me", middleware.AuthRequired(gateway.Active), authControllers.Me)
}
