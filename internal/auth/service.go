package auth

import (
	"CSChat/be/internal/config"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

type ServiceImpl struct {
	config config.JWTConfig
	now    func() time.Time
}

func NewServiceImpl(config config.JWTConfig) *ServiceImpl {
	return &ServiceImpl{
		config: config,
		now:    time.Now,
	}
}

// IssueToken signs an HS256 token for subject valid for ExpiryHours.
func (s *ServiceImpl) IssueToken(subject string) (*TokenResponse, error) {
	if !s.config.Enabled() {
		return nil, ErrNoSecret
	}

	now := s.now()
	expiresAt := now.Add(time.Hour * s.config.ExpiryHours)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	tokenString, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return nil, err
	}
	return &TokenResponse{Token: tokenString, ExpiresAt: expiresAt.Unix()}, nil
}

func (s *ServiceImpl) Verify(tokenString string) (*Claims, error) {
	if !s.config.Enabled() {
		return nil, ErrNoSecret
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(s.config.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	out := &Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return out, nil
}
