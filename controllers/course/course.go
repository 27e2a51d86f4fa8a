package controllers

import (
	"academy/config"
	"academy/gateway"
	"academy/middleware"
	"academy/models"
	"academy/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the catalog filtered by the caller's role.
// Anonymous callers get an empty catalog unless public preview is
// enabled, in which case the full unfiltered catalog is returned.
func GetAllCourses(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var role models.Role
	token := middleware.SessionToken(c)
	if user != nil {
		role = user.Role
	} else if !config.AppConfig.PublicPreview {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", []models.Course{})
	}

	ctx, cancel := middleware.RequestContext(c, token)
	defer cancel()

	courses, err := gateway.Active.AllCourses(ctx, role)
	if err != nil {
		return gatewayError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns one course with its full module tree,
// provided the caller's role is allowed to see it.
func GetCourseDetails(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	ctx, cancel := middleware.RequestContext(c, middleware.SessionToken(c))
	defer cancel()

	course, err := gateway.Active.CourseByID(ctx, courseID)
	if err != nil {
		return gatewayError(c, err)
	}

	if !course.HasAccess(user.Role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this course!", nil)
	}

	decorateEmbedURLs(course)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// GetClass returns a single lesson for playback. Lessons are only served
// to students whose role is allowed on the course.
func GetClass(c *fiber.Ctx) error {
	course, err := lessonCourse(c)
	if err != nil || course == nil {
		return err
	}
	classID := c.Locals("classID").(uint)

	class := course.ClassByID(classID)
	if class == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	class.EmbedURL = utils.EmbedVideoURL(class.VideoURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class fetched successfully!", fiber.Map{
		"course_id":    course.ID,
		"course_title": course.Title,
		"class":        class,
	})
}

// GetNextClass returns the lesson that follows the given one in
// module-then-class order, or null data at the end of the course.
func GetNextClass(c *fiber.Ctx) error {
	course, err := lessonCourse(c)
	if err != nil || course == nil {
		return err
	}
	classID := c.Locals("classID").(uint)

	next := course.NextClass(classID)
	if next == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No next class.", nil)
	}

	next.EmbedURL = utils.EmbedVideoURL(next.VideoURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Next class fetched successfully!", next)
}

// lessonCourse fetches the course for a lesson route and applies the
// lesson gates: the caller's role must be allowed on the course and only
// students watch lessons. Returns (nil, response) when a gate fired.
func lessonCourse(c *fiber.Ctx) (*models.Course, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	ctx, cancel := middleware.RequestContext(c, middleware.SessionToken(c))
	defer cancel()

	course, err := gateway.Active.CourseByID(ctx, courseID)
	if err != nil {
		return nil, gatewayError(c, err)
	}

	if !course.HasAccess(user.Role) || user.Role != models.RoleStudent {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this class!", nil)
	}

	return course, nil
}

// decorateEmbedURLs fills the embeddable-player form for every class in
// the course.
func decorateEmbedURLs(course *models.Course) {
	for mi := range course.Modules {
		for ci := range course.Modules[mi].Classes {
			class := &course.Modules[mi].Classes[ci]
			class.EmbedURL = utils.EmbedVideoURL(class.VideoURL)
		}
	}
}

// gatewayError maps gateway failures onto the response envelope.
func gatewayError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gateway.ErrCourseNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case errors.Is(err, gateway.ErrClassNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	case errors.Is(err, gateway.ErrUnauthenticated):
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not authenticated!", nil)
	}

	var reqErr *gateway.RequestFailedError
	if errors.As(err, &reqErr) {
		log.Printf("Content API request failed: %v", reqErr)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Content API request failed: "+reqErr.StatusText, nil)
	}

	log.Printf("Error calling content gateway: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
}
