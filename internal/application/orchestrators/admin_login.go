package orchestrators

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the process-wide admin credential pair, loaded once at
// startup and immutable for the process lifetime. The password is held only
// as a bcrypt hash.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AdminLoginInput carries input for the admin login orchestrator.
type AdminLoginInput struct {
	Username string
	Password string
}

// AdminLoginDeps holds dependencies for AdminLogin.
type AdminLoginDeps struct {
	Credentials AdminCredentials
}

// ErrInvalidAdminCredentials deliberately covers both a wrong username and a
// wrong password.
var ErrInvalidAdminCredentials = errors.New("invalid admin credentials")

// ExecuteAdminLogin verifies the configured admin credential pair. The
// username comparison is constant-time and the bcrypt check runs even when
// the username does not match, so response timing reveals nothing.
// PRE: deps.Credentials were loaded at startup
// POST: Returns nil only when both username and password match
func ExecuteAdminLogin(ctx context.Context, input AdminLoginInput, deps AdminLoginDeps) error {
	username := strings.TrimSpace(input.Username)

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(deps.Credentials.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(
		[]byte(deps.Credentials.PasswordHash), []byte(input.Password))

	if !usernameOK || passwordErr != nil {
		slog.Info("auth_event", "event", "admin_login_failed", "username", username)
		return ErrInvalidAdminCredentials
	}

	slog.Info("auth_event", "event", "admin_login_success", "username", username)
	return nil
}
