package gateway

import (
	"academy/models"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrapiAllCoursesFlattensEnvelope(t *testing.T) {
	var gotAuth, gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"id": 1,
					"attributes": map[string]interface{}{
						"title":        "Complete Web Development Bootcamp",
						"instructor":   "Harry",
						"allowedRoles": []string{"student", "developer"},
						"modules": []map[string]interface{}{
							{
								"id":    1,
								"title": "Introduction",
								"order": 1,
								"classes": []map[string]interface{}{
									{"id": 1, "title": "What is Web Development?", "videoUrl": "https://youtu.be/X8BYu3dMKf0", "order": 1},
								},
							},
						},
					},
				},
				{
					"id": 3,
					"attributes": map[string]interface{}{
						"title":        "Advanced Programming Concepts",
						"allowedRoles": []string{"developer"},
					},
				},
			},
		})
	}))
	defer server.Close()

	gw := NewStrapiGateway(server.URL)
	ctx := WithToken(context.Background(), "remote-token")

	courses, err := gw.AllCourses(ctx, models.RoleDeveloper)
	require.NoError(t, err)

	assert.Equal(t, "Bearer remote-token", gotAuth)
	assert.Contains(t, gotQuery, "filters")
	assert.Contains(t, gotQuery, "populate")

	require.Len(t, courses, 2)
	assert.Equal(t, uint(1), courses[0].ID)
	assert.Equal(t, "Complete Web Development Bootcamp", courses[0].Title)
	assert.Equal(t, []models.Role{models.RoleStudent, models.RoleDeveloper}, courses[0].AllowedRoles)
	require.Len(t, courses[0].Modules, 1)
	require.Len(t, courses[0].Modules[0].Classes, 1)
	assert.Equal(t, "https://youtu.be/X8BYu3dMKf0", courses[0].Modules[0].Classes[0].VideoURL)
	assert.Equal(t, uint(3), courses[1].ID)
}

func TestStrapiAllCoursesNoRoleOmitsFilter(t *testing.T) {
	var gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	gw := NewStrapiGateway(server.URL)

	courses, err := gw.AllCourses(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, courses)
	assert.NotContains(t, gotQuery, "filters")
}

func TestStrapiCourseByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"status": 404, "name": "NotFoundError", "message": "Not Found"}}`))
	}))
	defer server.Close()

	gw := NewStrapiGateway(server.URL)

	_, err := gw.CourseByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestStrapiCourseByIDFlattens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": 2, "attributes": {"title": "Social Media Marketing Mastery", "allowedRoles": ["student", "social-media-manager"]}}}`))
	}))
	defer server.Close()

	gw := NewStrapiGateway(server.URL)

	course, err := gw.CourseByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), course.ID)
	assert.Equal(t, "Social Media Marketing Mastery", course.Title)
}

func TestStrapiRequestFailedCarriesRemoteMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"status": 500, "name": "InternalServerError", "message": "database exploded"}}`))
	}))
	defer server.Close()

	gw := NewStrapiGateway(server.URL)

	_, err := gw.AllCourses(context.Background(), models.RoleStudent)
	require.Error(t, err)

	var reqErr *RequestFailedError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Equal(t, "database exploded", reqErr.Message)
}

func TestStrapiLoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"status": 400, "name": "ValidationError", "message": "Invalid identifier or password"}}`))
	}))
	defer server.Close()

	gw := NewStrapiGateway(server.URL)

	_, _, err := gw.Login(context.Background(), "student@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStrapiLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/local", r.URL.Path)

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "student@example.com", body["identifier"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jwt": "remote-jwt", "user": {"id": 7, "username": "student1", "email": "student@example.com", "role": "student"}}`))
	}))
	defer server.Close()

	gw := NewStrapiGateway(server.URL)

	user, token, err := gw.Login(context.Background(), "student@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "remote-jwt", token)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestStrapiCurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)

		if r.Header.Get("Authorization") != "Bearer remote-jwt" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "username": "student1", "email": "student@example.com", "role": "student"}`))
	}))
	defer server.Close()

	gw := NewStrapiGateway(server.URL)

	user, err := gw.CurrentUser(context.Background(), "remote-jwt")
	require.NoError(t, err)
	assert.Equal(t, "student1", user.Username)

	_, err = gw.CurrentUser(context.Background(), "stale-jwt")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
