package services

import (
	"time"

	"bakery-shop/models"
	"bakery-shop/utils"
)

type AuthService struct {
	username     string
	passwordHash string
	secret       string
	expiry       time.Duration
}

func NewAuthService(username, passwordHash, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		expiry:       expiry,
	}
}

// Enabled reports whether admin access is configured. Without a signing
// secret and a password hash every login and token is rejected.
func (s *AuthService) Enabled() bool {
	return s != nil && s.secret != "" && s.passwordHash != ""
}

func (s *AuthService) Login(req models.AdminLoginRequest) (*models.LoginResponse, error) {
	if !s.Enabled() {
		return nil, models.ErrInvalidCredentials
	}
	if req.Username != s.username || !utils.VerifyPassword(s.passwordHash, req.Password) {
		return nil, models.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(s.username, s.secret, s.expiry)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}

func (s *AuthService) Verify(token string) (*utils.Claims, error) {
	if !s.Enabled() {
		return nil, models.ErrUnauthorized
	}
	claims, err := utils.ValidateToken(token, s.secret)
	if err != nil {
		return nil, models.ErrUnauthorized
	}
	return claims, nil
}
