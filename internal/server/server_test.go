package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"matchday/internal/config"
	"matchday/internal/database"
	"matchday/internal/middleware"
	"matchday/internal/models"
	"matchday/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret-key-12345678901234567890123456789012"

// newTestServer wires a Server against an in-memory database and mounts the
// real route table, so requests go through the actual auth middleware.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{JWTSecret: testJWTSecret, Env: "test"}
	middleware.InitMiddleware(cfg)

	s := &Server{
		config:         cfg,
		db:             db,
		userRepo:       repository.NewUserRepository(db),
		friendRepo:     repository.NewFriendRepository(db),
		flightRepo:     repository.NewOwnedRepository[models.Flight](db, "Flight"),
		attendanceRepo: repository.NewOwnedRepository[models.Attendance](db, "Attendance"),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "x",
		IsActive: true,
		Profile:  models.Profile{FirstName: username},
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func bearerFor(t *testing.T, s *Server, user *models.User) string {
	t.Helper()
	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

// doJSON performs a request against the test app. body may be nil, a raw
// []byte payload, or any JSON-serializable value.
func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// errorCode drains the response and returns the machine-readable error code.
func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var envelope models.ErrorResponse
	decodeBody(t, resp, &envelope)
	return envelope.Code
}
