package courseRoutes

import (
	controllers "academy/controllers/course"
	"academy/gateway"
	"academy/middleware"
	validators "academy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires the catalog and lesson endpoints.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Listing allows anonymous callers; the handler decides what they see
	courseGroup.Get("/", middleware.OptionalAuth(gateway.Active), controllers.GetAllCourses)

	courseGroup.Get("/:id", middleware.AuthRequired(gateway.Active), validators.GetCourseDetail(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/classes/:classId", middleware.AuthRequired(gateway.Active), validators.GetClass(), controllers.GetClass)
	courseGroup.Get("/:id/classes/:classId/next", middleware.AuthRequired(gateway.Active), validators.GetClass(), controllers.GetNextClass)
}
