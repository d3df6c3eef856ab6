package jwt

import (
	"fmt"
	"time"

	"admin-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CreateToken signs a token for payload. Missing token id, issue time and
// expiry are filled in from the manager configuration.
func (m *managerImpl) CreateToken(payload scope.Payload) (string, error) {
	now := m.now()
	if payload.TokenID == "" {
		payload.TokenID = uuid.New().String()
	}
	if payload.IssuedAt == 0 {
		payload.IssuedAt = now.Unix()
	}
	if payload.ExpiresAt == 0 {
		payload.ExpiresAt = now.Add(m.ttl).Unix()
	}

	claims := Claims{
		Email: payload.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   payload.UserID,
			Audience:  m.audience,
			ExpiresAt: jwt.NewNumericDate(time.Unix(payload.ExpiresAt, 0)),
			IssuedAt:  jwt.NewNumericDate(time.Unix(payload.IssuedAt, 0)),
			ID:        payload.TokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns its payload.
func (m *managerImpl) Verify(tokenString string) (scope.Payload, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return scope.Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return scope.Payload{}, ErrInvalidToken
	}

	p := scope.Payload{
		UserID:  claims.Subject,
		Email:   claims.Email,
		TokenID: claims.ID,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Unix()
	}
	return p, nil
}

func (m *managerImpl) TTL() time.Duration {
	return m.ttl
}
