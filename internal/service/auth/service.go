package auth

import (
	"context"
	"crypto/subtle"

	"github.com/zavodops/factory-backend-go/internal/config"
	"github.com/zavodops/factory-backend-go/internal/domain/auth"
	"github.com/zavodops/factory-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	admin      config.AdminConfig
	jwtService jwt.Service
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	loginMatch := subtle.ConstantTimeCompare([]byte(req.Login), []byte(s.admin.Login)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	if !loginMatch || passwordErr != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Login)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}
