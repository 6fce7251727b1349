package services

import (
	"errors"

	"github.com/campushire/campushire/internal/auth"
	"github.com/campushire/campushire/internal/dtos"
	"github.com/campushire/campushire/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{DB: db, JWTSecret: jwtSecret}
}

var validRoles = map[string]bool{
	models.RoleStudent:    true,
	models.RoleCompany:    true,
	models.RoleUniversity: true,
}

// Register creates the user and returns a signed token.
func (s *AuthService) Register(req *dtos.RegisterRequest) (*models.User, string, error) {
	if !validRoles[req.Role] {
		return nil, "", ValidationError("role must be one of student, company, university")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ValidationError("email already registered")
		}
		return nil, "", err
	}
	token, err := auth.IssueToken(s.JWTSecret, user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns a signed token. Wrong email and
// wrong password produce the same error.
func (s *AuthService) Login(req *dtos.LoginRequest) (*models.User, string, error) {
	var user models.User
	err := s.DB.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ValidationError("invalid email or password")
	}
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ValidationError("invalid email or password")
	}
	token, err := auth.IssueToken(s.JWTSecret, user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
