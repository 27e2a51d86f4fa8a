package gateway

import (
	"academy/models"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// StrapiGateway talks to the remote content API. Entities arrive wrapped
// in the {data, meta} / {id, attributes} envelope and are flattened into
// the domain model before they leave this package.
type StrapiGateway struct {
	client *resty.Client
}

// NewStrapiGateway builds the networked backend for the given base URL.
func NewStrapiGateway(baseURL string) *StrapiGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")

	return &StrapiGateway{client: client}
}

// courseAttributes is the remote course shape minus the id, which lives
// on the entity wrapper.
type courseAttributes struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Thumbnail    string          `json:"thumbnail"`
	Instructor   string          `json:"instructor"`
	Duration     string          `json:"duration"`
	Level        string          `json:"level"`
	AllowedRoles []models.Role   `json:"allowedRoles"`
	Modules      []models.Module `json:"modules"`
}

type courseEntity struct {
	ID         uint             `json:"id"`
	Attributes courseAttributes `json:"attributes"`
}

type courseListEnvelope struct {
	Data []courseEntity `json:"data"`
}

type courseEnvelope struct {
	Data courseEntity `json:"data"`
}

type remoteUser struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

type authResponse struct {
	JWT  string     `json:"jwt"`
	User remoteUser `json:"user"`
}

type remoteError struct {
	Error struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

func flattenCourse(e courseEntity) models.Course {
	return models.Course{
		ID:           e.ID,
		Title:        e.Attributes.Title,
		Description:  e.Attributes.Description,
		Thumbnail:    e.Attributes.Thumbnail,
		Instructor:   e.Attributes.Instructor,
		Duration:     e.Attributes.Duration,
		Level:        e.Attributes.Level,
		AllowedRoles: e.Attributes.AllowedRoles,
		Modules:      e.Attributes.Modules,
	}
}

func flattenUser(u remoteUser) *models.User {
	return &models.User{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// request builds a per-call request carrying the context deadline and the
// caller's bearer token when one is attached.
func (g *StrapiGateway) request(ctx context.Context) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if token := TokenFromContext(ctx); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// requestFailed maps a non-success response to the error taxonomy,
// keeping the remote's structured message when the body carries one.
func requestFailed(resp *resty.Response) error {
	var body remoteError
	_ = json.Unmarshal(resp.Body(), &body)

	return &RequestFailedError{
		Status:     resp.StatusCode(),
		StatusText: resp.Status(),
		Message:    body.Error.Message,
	}
}

func (g *StrapiGateway) AllCourses(ctx context.Context, role models.Role) ([]models.Course, error) {
	req := g.request(ctx).
		SetQueryParam("populate[modules][populate][classes]", "*")
	if role != "" {
		req.SetQueryParam("filters[allowedRoles][$contains]", string(role))
	}

	resp, err := req.Get("/courses")
	if err != nil {
		return nil, fmt.Errorf("fetching courses: %w", err)
	}
	if resp.IsError() {
		return nil, requestFailed(resp)
	}

	var envelope courseListEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decoding courses response: %w", err)
	}

	courses := make([]models.Course, 0, len(envelope.Data))
	for _, entity := range envelope.Data {
		courses = append(courses, flattenCourse(entity))
	}
	return courses, nil
}

func (g *StrapiGateway) CourseByID(ctx context.Context, id uint) (*models.Course, error) {
	resp, err := g.request(ctx).
		SetQueryParam("populate[modules][populate][classes]", "*").
		Get(fmt.Sprintf("/courses/%d", id))
	if err != nil {
		return nil, fmt.Errorf("fetching course %d: %w", id, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, ErrCourseNotFound
	}
	if resp.IsError() {
		return nil, requestFailed(resp)
	}

	var envelope courseEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decoding course response: %w", err)
	}

	course := flattenCourse(envelope.Data)
	return &course, nil
}

func (g *StrapiGateway) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	resp, err := g.request(ctx).
		SetBody(map[string]string{"identifier": email, "password": password}).
		Post("/auth/local")
	if err != nil {
		return nil, "", fmt.Errorf("logging in: %w", err)
	}
	if resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusUnauthorized {
		return nil, "", ErrInvalidCredentials
	}
	if resp.IsError() {
		return nil, "", requestFailed(resp)
	}

	var auth authResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return nil, "", fmt.Errorf("decoding login response: %w", err)
	}
	return flattenUser(auth.User), auth.JWT, nil
}

// Register delegates validation entirely to the remote API; its failures
// come back as RequestFailedError with the remote's message.
func (g *StrapiGateway) Register(ctx context.Context, username, email, password string, role models.Role) (*models.User, string, error) {
	resp, err := g.request(ctx).
		SetBody(map[string]string{
			"username": username,
			"email":    email,
			"password": password,
			"role":     string(role),
		}).
		Post("/auth/local/register")
	if err != nil {
		return nil, "", fmt.Errorf("registering: %w", err)
	}
	if resp.IsError() {
		return nil, "", requestFailed(resp)
	}

	var auth authResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return nil, "", fmt.Errorf("decoding register response: %w", err)
	}
	return flattenUser(auth.User), auth.JWT, nil
}

func (g *StrapiGateway) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/users/me")
	if err != nil {
		return nil, fmt.Errorf("fetching current user: %w", err)
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, ErrUnauthenticated
	}
	if resp.IsError() {
		return nil, requestFailed(resp)
	}

	var user remoteUser
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, fmt.Errorf("decoding user response: %w", err)
	}
	return flattenUser(user), nil
}
