package controllers_test

import (
	"academy/config"
	"academy/gateway"
	authRoutes "academy/routers/authRoutes"
	courseRoutes "academy/routers/courseRoutes"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	config.LoadConfig()
	config.AppConfig.UseMock = true
	config.AppConfig.PublicPreview = false
	gateway.Active = gateway.NewMockGateway()

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func login(t *testing.T, app *fiber.App, email string) *http.Cookie {
	t.Helper()

	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(fiber.Map{"identifier": email, "password": "password123"})
	req := httptest.NewRequest("POST", "/auth/local", &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "jwt" {
			return cookie
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func get(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp, result
}

func courseIDs(t *testing.T, result map[string]interface{}) []uint {
	t.Helper()

	data, ok := result["data"].([]interface{})
	require.True(t, ok, "expected a course list, got %v", result["data"])

	ids := make([]uint, 0, len(data))
	for _, item := range data {
		ids = append(ids, uint(item.(map[string]interface{})["id"].(float64)))
	}
	return ids
}

func TestCatalogFilteredByRole(t *testing.T) {
	app := newTestApp()

	developer := login(t, app, "developer@example.com")
	resp, result := get(t, app, "/courses/", developer)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []uint{1, 3}, courseIDs(t, result))

	social := login(t, app, "social@example.com")
	resp, result = get(t, app, "/courses/", social)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []uint{2}, courseIDs(t, result))

	normal := login(t, app, "user@example.com")
	resp, result = get(t, app, "/courses/", normal)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, courseIDs(t, result))
}

func TestCatalogAnonymousFailsClosed(t *testing.T) {
	app := newTestApp()

	resp, result := get(t, app, "/courses/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, courseIDs(t, result))
}

func TestCatalogAnonymousPublicPreview(t *testing.T) {
	app := newTestApp()
	config.AppConfig.PublicPreview = true

	resp, result := get(t, app, "/courses/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []uint{1, 2, 3}, courseIDs(t, result))
}

func TestCourseDetail(t *testing.T) {
	app := newTestApp()
	student := login(t, app, "student@example.com")

	resp, result := get(t, app, "/courses/1", student)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	course := result["data"].(map[string]interface{})
	assert.Equal(t, "Complete Web Development Bootcamp", course["title"])

	// Classes carry their embeddable-player form
	modules := course["modules"].([]interface{})
	classes := modules[0].(map[string]interface{})["classes"].([]interface{})
	first := classes[0].(map[string]interface{})
	assert.Equal(t, "https://www.youtube.com/embed/X8BYu3dMKf0?autoplay=1", first["embedUrl"])
}

func TestCourseDetailLeavesCatalogUnmodified(t *testing.T) {
	app := newTestApp()
	student := login(t, app, "student@example.com")

	// Decorating the response must not write embed URLs back into the
	// gateway's catalog
	resp, _ := get(t, app, "/courses/1", student)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	course, err := gateway.Active.CourseByID(context.Background(), 1)
	require.NoError(t, err)
	for _, module := range course.Modules {
		for _, class := range module.Classes {
			assert.Empty(t, class.EmbedURL, "class %d carries a decoration from an earlier request", class.ID)
		}
	}
}

func TestCourseDetailNotFound(t *testing.T) {
	app := newTestApp()
	student := login(t, app, "student@example.com")

	resp, _ := get(t, app, "/courses/9999", student)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCourseDetailForbiddenForWrongRole(t *testing.T) {
	app := newTestApp()
	developer := login(t, app, "developer@example.com")

	// Course 2 allows student and social-media-manager only
	resp, _ := get(t, app, "/courses/2", developer)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCourseDetailRequiresAuth(t *testing.T) {
	app := newTestApp()

	resp, _ := get(t, app, "/courses/1", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestClassPlayback(t *testing.T) {
	app := newTestApp()
	student := login(t, app, "student@example.com")

	resp, result := get(t, app, "/courses/1/classes/1", student)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	class := data["class"].(map[string]interface{})
	assert.Equal(t, "What is Web Development?", class["title"])
	assert.Equal(t, "https://www.youtube.com/embed/X8BYu3dMKf0?autoplay=1", class["embedUrl"])
}

func TestClassStudentOnly(t *testing.T) {
	app := newTestApp()

	// Developers have course access but lessons are student-only
	developer := login(t, app, "developer@example.com")
	resp, _ := get(t, app, "/courses/3/classes/6", developer)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestClassNotFound(t *testing.T) {
	app := newTestApp()
	student := login(t, app, "student@example.com")

	resp, _ := get(t, app, "/courses/1/classes/9999", student)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNextClassWalk(t *testing.T) {
	app := newTestApp()
	student := login(t, app, "student@example.com")

	// Module boundary: class 2 is the last of module 1, next is class 3
	resp, result := get(t, app, "/courses/1/classes/2/next", student)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	next := result["data"].(map[string]interface{})
	assert.Equal(t, float64(3), next["id"])

	// Last class of the course has no successor
	resp, result = get(t, app, "/courses/1/classes/4/next", student)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, result["data"])
}
