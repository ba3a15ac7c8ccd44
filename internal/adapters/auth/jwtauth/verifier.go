package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pocket-pets/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Verifier implementa auth.AuthVerifier verificando HS256 localmente.
// Útil cuando el servicio de cuentas firma con secreto compartido.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Claims{}, ErrTokenInvalid
	}

	sub, _ := mc.GetSubject()
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return auth.Claims{}, errors.New("token missing subject")
	}

	claims := auth.Claims{UserID: sub, Role: auth.RolePlayer}
	if email, ok := mc["email"].(string); ok {
		claims.Email = strings.TrimSpace(email)
	}
	if role, ok := mc["role"].(string); ok && strings.TrimSpace(role) != "" {
		claims.Role = strings.TrimSpace(role)
	}

	return claims, nil
}
