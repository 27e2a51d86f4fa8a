package gateway

import (
	"academy/config"
	"academy/models"
	"context"
	"errors"
	"fmt"
	"log"
)

// ContentGateway is the single capability behind which both content
// backends live. The variant is chosen once at startup; handlers only
// ever see this interface.
//
// AllCourses filters the catalog by role when one is given; an empty role
// returns the full catalog and callers are responsible for deciding
// whether an anonymous caller may see it.
type ContentGateway interface {
	AllCourses(ctx context.Context, role models.Role) ([]models.Course, error)
	CourseByID(ctx context.Context, id uint) (*models.Course, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, username, email, password string, role models.Role) (*models.User, string, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrCourseNotFound     = errors.New("course not found")
	ErrClassNotFound      = errors.New("class not found")
)

// RequestFailedError reports a non-success response from the remote
// content API. Message carries the remote's structured error message when
// its body provided one.
type RequestFailedError struct {
	Status     int
	StatusText string
	Message    string
}

func (e *RequestFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("content API request failed: %s: %s", e.StatusText, e.Message)
	}
	return fmt.Sprintf("content API request failed: %s", e.StatusText)
}

type contextKey int

const tokenContextKey contextKey = iota

// WithToken attaches the caller's bearer token to ctx so the networked
// backend can forward it to the remote content API.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext returns the bearer token attached by WithToken, or "".
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// Active is the gateway variant selected at startup.
var Active ContentGateway

// Init selects the backend once, based on configuration.
func Init() {
	if config.AppConfig.UseMock {
		log.Println("Content gateway: using in-memory mock backend")
		Active = NewMockGateway()
		return
	}
	log.Printf("Content gateway: using remote content API at %s", config.AppConfig.APIURL)
	Active = NewStrapiGateway(config.AppConfig.APIURL)
}
