package auth

import (
	"context"
	"os"
	"time"

	autherrors "kampus-absensi/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = time.Hour * 8

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)

	GetMe(ctx context.Context, adminID string) (*AuthResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	// 1. Ambil admin aktif
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	// 3. Generate token
	token, err := s.generateToken(admin.ID.String(), admin.Username, admin.Role, accessTokenTTL)
	if err != nil {
		return LoginResponse{}, err
	}

	// Best effort, login tetap sukses walau update last_login gagal.
	_ = s.repo.TouchLastLogin(ctx, admin.ID.String(), time.Now())

	return LoginResponse{
		AccessToken: token,
		Admin: AuthResponse{
			ID:       admin.ID.String(),
			Username: admin.Username,
			Nama:     admin.Nama,
			Role:     admin.Role,
		},
	}, nil
}

func (s *service) GetMe(ctx context.Context, adminID string) (*AuthResponse, error) {
	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	return &AuthResponse{
		ID:       admin.ID.String(),
		Username: admin.Username,
		Nama:     admin.Nama,
		Role:     admin.Role,
	}, nil
}

// reusable token generator
func (s *service) generateToken(adminID, username, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
