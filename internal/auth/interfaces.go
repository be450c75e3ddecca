package auth

import "errors"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrNoSecret     = errors.New("jwt secret is not configured")
)

type Service interface {
	IssueToken(subject string) (*TokenResponse, error)
	Verify(token string) (*Claims, error)
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Claims is what a verified token says about its holder.
type Claims struct {
	Subject   string
	ExpiresAt int64
}
