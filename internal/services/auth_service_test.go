package services

import (
	"testing"

	"github.com/campushire/campushire/internal/auth"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	user, token, err := svc.Register(&dtos.RegisterRequest{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
		Role:     models.RoleStudent,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("register returned empty token")
	}
	claims, err := auth.ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != models.RoleStudent {
		t.Errorf("claims = %+v, want uid %d role student", claims, user.ID)
	}

	if _, _, err := svc.Login(&dtos.LoginRequest{
		Email: "jordan@example.com", Password: "hunter2hunter2",
	}); err != nil {
		t.Errorf("login with correct password: %v", err)
	}
	if _, _, err := svc.Login(&dtos.LoginRequest{
		Email: "jordan@example.com", Password: "wrong",
	}); !IsValidation(err) {
		t.Errorf("login with wrong password = %v, want validation error", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	req := &dtos.RegisterRequest{
		Name: "A", Email: "dup@example.com", Password: "hunter2hunter2", Role: models.RoleCompany,
	}
	if _, _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(req); !IsValidation(err) {
		t.Errorf("duplicate register = %v, want validation error", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	_, _, err := svc.Register(&dtos.RegisterRequest{
		Name: "A", Email: "x@example.com", Password: "hunter2hunter2", Role: "admin",
	})
	if !IsValidation(err) {
		t.Errorf("register with bad role = %v, want validation error", err)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := auth.IssueToken("secret-a", 7, models.RoleStudent)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := auth.ParseToken("secret-b", token); err == nil {
		t.Error("token accepted with wrong secret")
	}
}
