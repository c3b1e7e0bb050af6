package service

import (
	"testing"
	"time"

	"bluecycle/config"
	"bluecycle/internal/auth"
	"bluecycle/internal/domain"
	"bluecycle/internal/repository"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
			Issuer:        "bluecycle",
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := testDB(t)
	cfg := testAuthConfig()
	svc := NewAuthService(cfg, repository.NewUserRepository(db))

	u, access, refresh, err := svc.Register("ani@test.local", "Ani", "s3cret-pass", domain.RoleUser, "0812")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("missing tokens on register")
	}
	claims, err := auth.ParseAccessToken(&cfg.JWT, access)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != domain.RoleUser {
		t.Fatalf("claims = %+v, want user %d role USER", claims, u.ID)
	}

	if _, _, _, err := svc.Register("ani@test.local", "Ani 2", "other-pass", domain.RoleUser, ""); err != ErrEmailExists {
		t.Fatalf("duplicate register err = %v, want ErrEmailExists", err)
	}

	if _, _, _, err := svc.Login("ani@test.local", "wrong"); err != ErrInvalidCreds {
		t.Fatalf("bad password err = %v, want ErrInvalidCreds", err)
	}
	got, _, _, err := svc.Login("ani@test.local", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("login user = %d, want %d", got.ID, u.ID)
	}
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(testAuthConfig(), repository.NewUserRepository(db))

	u, _, _, err := svc.Register("boss@test.local", "Boss", "s3cret-pass", domain.RoleAdmin, "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != domain.RoleUser {
		t.Fatalf("role = %s, want USER", u.Role)
	}

	d, _, _, err := svc.Register("driver@test.local", "Driver", "s3cret-pass", domain.RoleDriver, "")
	if err != nil {
		t.Fatalf("register driver: %v", err)
	}
	if d.Role != domain.RoleDriver {
		t.Fatalf("role = %s, want DRIVER", d.Role)
	}
}

func TestChangePassword(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(testAuthConfig(), repository.NewUserRepository(db))

	u, _, _, err := svc.Register("citra@test.local", "Citra", "old-password", domain.RoleUser, "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.ChangePassword(u.ID, "wrong", "new-password"); err != ErrInvalidCreds {
		t.Fatalf("wrong current password err = %v, want ErrInvalidCreds", err)
	}
	if err := svc.ChangePassword(u.ID, "old-password", "new-password"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, _, err := svc.Login("citra@test.local", "old-password"); err != ErrInvalidCreds {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, _, _, err := svc.Login("citra@test.local", "new-password"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	db := testDB(t)
	cfg := testAuthConfig()
	svc := NewAuthService(cfg, repository.NewUserRepository(db))

	_, _, refresh, err := svc.Register("dodi@test.local", "Dodi", "s3cret-pass", domain.RoleUser, "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	access, newRefresh, err := svc.RefreshToken(refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access == "" || newRefresh == "" {
		t.Fatal("missing tokens on refresh")
	}
	if _, _, err := svc.RefreshToken("not-a-token"); err != auth.ErrInvalidToken {
		t.Fatalf("bad token err = %v, want ErrInvalidToken", err)
	}
}
