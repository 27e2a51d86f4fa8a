package courseValidator

import (
	"academy/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parses a numeric path parameter into a uint, rejecting
// zero and non-numeric values.
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GetCourseDetail validates the course id path parameter
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// GetClass validates the course and class id path parameters
func GetClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		classID, ok := parseIDParam(c, "classId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("classID", classID)
		return c.Next()
	}
}
