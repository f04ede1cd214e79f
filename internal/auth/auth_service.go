package auth

import (
	"context"
	"crypto/subtle"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	autherrors "github.com/thekidkid/clothing-brand/internal/auth/errors"
)

// Service authenticates the single dashboard admin. Credentials live in the
// environment (ADMIN_EMAIL, ADMIN_PASSWORD_HASH); there is no user table.
type Service struct {
	adminEmail string
	adminHash  string
	tokenTTL   time.Duration
}

func NewService() *Service {
	return &Service{
		adminEmail: os.Getenv("ADMIN_EMAIL"),
		adminHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		tokenTTL:   24 * time.Hour,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, AuthResponse, error) {
	if s.adminEmail == "" || s.adminHash == "" {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) != 1 {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken("admin", "ADMIN", s.tokenTTL)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, AuthResponse{
		Email: s.adminEmail,
		Role:  "ADMIN",
	}, nil
}

func (s *Service) generateToken(userID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
