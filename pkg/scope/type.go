package scope

import "admin-srv/internal/model"

// Payload is the verified content of a bearer token.
type Payload struct {
	UserID    string `json:"sub"`
	Email     string `json:"email"`
	TokenID   string `json:"jti"`
	Issuer    string `json:"iss"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Manager issues and verifies bearer tokens.
//
//go:generate mockery --name Manager
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

type scopeKey struct{}

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID:    payload.UserID,
		Email:     payload.Email,
		TokenID:   payload.TokenID,
		ExpiresAt: payload.ExpiresAt,
	}
}
