package orchestrators

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func adminDeps(t *testing.T) AdminLoginDeps {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return AdminLoginDeps{
		Credentials: AdminCredentials{Username: "admin", PasswordHash: string(hash)},
	}
}

func TestExecuteAdminLogin_Success(t *testing.T) {
	err := ExecuteAdminLogin(context.Background(),
		AdminLoginInput{Username: "admin", Password: "s3cret"}, adminDeps(t))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecuteAdminLogin_TrimsUsername(t *testing.T) {
	err := ExecuteAdminLogin(context.Background(),
		AdminLoginInput{Username: "  admin ", Password: "s3cret"}, adminDeps(t))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecuteAdminLogin_WrongPassword(t *testing.T) {
	err := ExecuteAdminLogin(context.Background(),
		AdminLoginInput{Username: "admin", Password: "wrong"}, adminDeps(t))
	if err != ErrInvalidAdminCredentials {
		t.Errorf("expected ErrInvalidAdminCredentials, got %v", err)
	}
}

func TestExecuteAdminLogin_WrongUsername(t *testing.T) {
	err := ExecuteAdminLogin(context.Background(),
		AdminLoginInput{Username: "root", Password: "s3cret"}, adminDeps(t))
	if err != ErrInvalidAdminCredentials {
		t.Errorf("expected ErrInvalidAdminCredentials, got %v", err)
	}
}
