package helpers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"waterReminderAPI/internal/user"
	"waterReminderAPI/middleware"
	"waterReminderAPI/services"
)

// SetupTestDB creates a test database connection. Tests are skipped when no
// test database is configured so the suite can run without Postgres.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL or DATABASE_URL must be set for integration tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	return pool
}

// CleanupTestDB cleans up test data
func CleanupTestDB(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "DELETE FROM users WHERE email LIKE 'test%@example.com'")
	if err != nil {
		t.Logf("Warning: failed to cleanup test data: %v", err)
	}
	pool.Close()
}

// UniqueTestEmail returns an email matching the cleanup pattern.
func UniqueTestEmail(prefix string) string {
	return fmt.Sprintf("test%s%d@example.com", prefix, time.Now().UnixNano())
}

// RegisterTestUser creates a user (with seeded goal and streak rows) through
// the service layer.
func RegisterTestUser(t *testing.T, userService *services.UserService, email string) *user.User {
	created, err := userService.Register(context.Background(), &user.RegisterRequest{
		Email:    email,
		Password: "test-password-123",
	})
	if err != nil {
		t.Fatalf("Failed to register test user: %v", err)
	}
	return created
}

// Authenticated attaches a user id to the request context, simulating a
// successful pass through the auth middleware.
func Authenticated(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	return r.WithContext(ctx)
}
