package gateway

import (
	"academy/models"
	"academy/utils"
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// mockPassphrase is the one passphrase every fixture user logs in with.
// Test-fixture behavior only; real credential checks belong to the remote
// auth provider.
const mockPassphrase = "password123"

// MockGateway serves a load-time constant catalog and a small set of
// fixture users from memory. Registration appends users with strictly
// increasing ids; nothing is persisted.
type MockGateway struct {
	mu             sync.Mutex
	users          []models.User
	courses        []models.Course
	passphraseHash []byte
}

// NewMockGateway builds the mock backend with its fixture data.
func NewMockGateway() *MockGateway {
	hash, err := bcrypt.GenerateFromPassword([]byte(mockPassphrase), bcrypt.DefaultCost)
	if err != nil {
		// DefaultCost on a constant input cannot fail at runtime.
		panic(err)
	}

	return &MockGateway{
		users:          mockUsers(),
		courses:        mockCourses(),
		passphraseHash: hash,
	}
}

func (g *MockGateway) AllCourses(ctx context.Context, role models.Role) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	visible := g.courses
	if role != "" {
		visible = models.FilterByRole(g.courses, role)
	}

	// Callers get detached copies; the fixture catalog itself must stay
	// a load-time constant.
	courses := make([]models.Course, len(visible))
	for i, course := range visible {
		courses[i] = cloneCourse(course)
	}
	return courses, nil
}

func (g *MockGateway) CourseByID(ctx context.Context, id uint) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range g.courses {
		if g.courses[i].ID == id {
			course := cloneCourse(g.courses[i])
			return &course, nil
		}
	}
	return nil, ErrCourseNotFound
}

// cloneCourse deep-copies a course so handlers can decorate the result
// without writing through to the fixture's shared backing arrays.
func cloneCourse(c models.Course) models.Course {
	clone := c
	clone.AllowedRoles = append([]models.Role(nil), c.AllowedRoles...)
	clone.Modules = make([]models.Module, len(c.Modules))
	for i, module := range c.Modules {
		moduleCopy := module
		moduleCopy.Classes = append([]models.Class(nil), module.Classes...)
		for j := range moduleCopy.Classes {
			moduleCopy.Classes[j].Topics = append([]string(nil), moduleCopy.Classes[j].Topics...)
		}
		clone.Modules[i] = moduleCopy
	}
	return clone
}

func (g *MockGateway) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.users {
		if g.users[i].Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(g.passphraseHash, []byte(password)); err != nil {
			return nil, "", ErrInvalidCredentials
		}
		user := g.users[i]
		token, err := utils.GenerateSessionToken(&user)
		if err != nil {
			return nil, "", err
		}
		return &user, token, nil
	}
	return nil, "", ErrInvalidCredentials
}

// Register always succeeds: the mock backend enforces no uniqueness on
// email or username, and the supplied role is kept verbatim.
func (g *MockGateway) Register(ctx context.Context, username, email, password string, role models.Role) (*models.User, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	user := models.User{
		ID:       uint(len(g.users) + 1),
		Username: username,
		Email:    email,
		Role:     role,
	}
	g.users = append(g.users, user)

	token, err := utils.GenerateSessionToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (g *MockGateway) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	userID, err := utils.ParseSessionToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.users {
		if g.users[i].ID == userID {
			user := g.users[i]
			return &user, nil
		}
	}
	return nil, ErrUnauthenticated
}

// mockUsers returns the fixture accounts. Every one of them logs in with
// the shared mock passphrase.
func mockUsers() []models.User {
	return []models.User{
		{ID: 1, Username: "student1", Email: "student@example.com", Role: models.RoleStudent},
		{ID: 2, Username: "developer1", Email: "developer@example.com", Role: models.RoleDeveloper},
		{ID: 3, Username: "social1", Email: "social@example.com", Role: models.RoleSocialMediaManager},
		{ID: 4, Username: "user1", Email: "user@example.com", Role: models.RoleNormalUser},
	}
}

// mockCourses returns the fixture catalog with role-based access.
func mockCourses() []models.Course {
	return []models.Course{
		{
			ID:           1,
			Title:        "Complete Web Development Bootcamp",
			Description:  "Learn HTML, CSS, JavaScript, React, Node.js and more",
			Thumbnail:    "/web-development-coding.png",
			Instructor:   "Harry",
			Duration:     "40 hours",
			Level:        "Beginner to Advanced",
			AllowedRoles: []models.Role{models.RoleStudent, models.RoleDeveloper},
			Modules: []models.Module{
				{
					ID:          1,
					Title:       "Introduction to Web Development",
					Description: "Learn the basics of web development",
					Order:       1,
					Classes: []models.Class{
						{
							ID:          1,
							Title:       "What is Web Development?",
							Description: "Introduction to web development concepts",
							Duration:    "15 min",
							VideoURL:    "https://youtu.be/X8BYu3dMKf0",
							Topics:      []string{"Web basics", "Frontend vs Backend", "Career paths"},
							Order:       1,
						},
						{
							ID:          2,
							Title:       "Setting Up Your Development Environment",
							Description: "Install necessary tools and software",
							Duration:    "20 min",
							VideoURL:    "https://youtu.be/MIJt9H69QVc",
							Topics:      []string{"VS Code", "Node.js"},
							Order:       2,
						},
					},
				},
				{
					ID:          2,
					Title:       "HTML & CSS Fundamentals",
					Description: "Master the building blocks of web pages",
					Order:       2,
					Classes: []models.Class{
						{
							ID:          3,
							Title:       "HTML Basics",
							Description: "Learn HTML tags and structure",
							Duration:    "30 min",
							VideoURL:    "https://youtu.be/k2DSi1zGEc8",
							Topics:      []string{"HTML tags", "Semantic HTML", "Forms"},
							Order:       1,
						},
						{
							ID:          4,
							Title:       "CSS Styling",
							Description: "Style your web pages with CSS",
							Duration:    "35 min",
							VideoURL:    "https://youtu.be/ESnrn1kAD4E",
							Topics:      []string{"Selectors", "Box model", "Flexbox"},
							Order:       2,
						},
					},
				},
			},
		},
		{
			ID:           2,
			Title:        "Social Media Marketing Mastery",
			Description:  "Learn to create engaging content and grow your audience",
			Thumbnail:    "/social-media-marketing.png",
			Instructor:   "Jane Smith",
			Duration:     "25 hours",
			Level:        "Intermediate",
			AllowedRoles: []models.Role{models.RoleStudent, models.RoleSocialMediaManager},
			Modules: []models.Module{
				{
					ID:          3,
					Title:       "Social Media Strategy",
					Description: "Plan your social media presence",
					Order:       1,
					Classes: []models.Class{
						{
							ID:          5,
							Title:       "Understanding Your Audience",
							Description: "Learn to identify and target your audience",
							Duration:    "25 min",
							VideoURL:    "https://youtu.be/mZm8hksRaIA",
							Topics:      []string{"Demographics", "Psychographics", "Personas"},
							Order:       1,
						},
					},
				},
			},
		},
		{
			ID:           3,
			Title:        "Advanced Programming Concepts",
			Description:  "Deep dive into algorithms, data structures, and design patterns",
			Thumbnail:    "/programming-code-abstract.png",
			Instructor:   "Mike Johnson",
			Duration:     "50 hours",
			Level:        "Advanced",
			AllowedRoles: []models.Role{models.RoleDeveloper},
			Modules: []models.Module{
				{
					ID:          4,
					Title:       "Data Structures",
					Description: "Master essential data structures",
					Order:       1,
					Classes: []models.Class{
						{
							ID:          6,
							Title:       "Arrays and Linked Lists",
							Description: "Understanding linear data structures",
							Duration:    "40 min",
							VideoURL:    "https://youtu.be/1lqoJ-NSmDE",
							Topics:      []string{"Arrays", "Linked Lists", "Time Complexity"},
							Order:       1,
						},
					},
				},
			},
		},
	}
}
