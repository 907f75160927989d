package testutil

import (
	"testing"
	"time"

	"github.com/dursunaydin1/refik-app/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Clock returns a now func frozen at t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// HashPassword hashes with the minimum bcrypt cost to keep tests fast.
func HashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

// CreateActiveUser stores an ACTIVE member with the given password.
func CreateActiveUser(t *testing.T, repo *MockUserRepository, name, phone, password string) *models.User {
	t.Helper()
	user := &models.User{
		Name:        name,
		PhoneNumber: phone,
		Role:        models.RoleMember,
		Status:      models.StatusActive,
	}
	if password != "" {
		user.PasswordHash = HashPassword(t, password)
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
