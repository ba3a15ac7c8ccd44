package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pocket-pets/internal/ports/auth"
)

var (
	ErrTokenEmpty = errors.New("token is empty")
)

// Verifier implementa auth.AuthVerifier delegando en el servicio de cuentas.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("accounts verify failed: %w", err)
	}

	if claims.UserID == "" {
		return auth.Claims{}, errors.New("accounts claims missing user id")
	}
	if claims.Role == "" {
		claims.Role = auth.RolePlayer
	}

	return claims, nil
}
