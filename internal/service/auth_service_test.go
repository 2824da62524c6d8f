package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"akramfit/coaching-app/internal/domain"

	"github.com/golang-jwt/jwt/v4"
)

func TestRegisterAdminBootstrapOnly(t *testing.T) {
	svc := NewAuthService(newFakeAdminRepo(), "test-secret", time.Hour)

	admin, err := svc.RegisterAdmin(context.Background(), "Akram", "akram@example.com", "supersecret")
	if err != nil {
		t.Fatalf("RegisterAdmin() error = %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, domain.RoleAdmin)
	}
	if admin.PasswordHash != "" {
		t.Error("PasswordHash leaked in registration response")
	}

	_, err = svc.RegisterAdmin(context.Background(), "Second", "second@example.com", "supersecret")
	if !errors.Is(err, ErrRegistrationClosed) {
		t.Errorf("second RegisterAdmin() error = %v, want ErrRegistrationClosed", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)

	if _, err := svc.RegisterAdmin(context.Background(), "Akram", "akram@example.com", "supersecret"); err != nil {
		t.Fatalf("RegisterAdmin() error = %v", err)
	}

	token, admin, err := svc.Login(context.Background(), "akram@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if admin == nil || admin.Email != "akram@example.com" {
		t.Fatalf("admin = %+v", admin)
	}
	if admin.PasswordHash != "" {
		t.Error("PasswordHash leaked in login response")
	}

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.UserID != admin.ID.Hex() {
		t.Errorf("token uid = %q, want %q", claims.UserID, admin.ID.Hex())
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("token role = %q, want %q", claims.Role, domain.RoleAdmin)
	}

	if _, _, err := svc.Login(context.Background(), "akram@example.com", "wrong"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("bad password error = %v, want ErrAuthenticationFailed", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "supersecret"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("unknown email error = %v, want ErrAuthenticationFailed", err)
	}
}
