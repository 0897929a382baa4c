package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawcare-service/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("token issuer not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// Issuer firma y verifica tokens HS256 con un secreto compartido.
// Implementa auth.TokenIssuer y auth.AuthVerifier.
type Issuer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

type appClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func New(secret, issuer string) *Issuer {
	return &Issuer{
		secret: []byte(strings.TrimSpace(secret)),
		issuer: strings.TrimSpace(issuer),
		now:    time.Now,
	}
}

func (i *Issuer) IsConfigured() bool {
	return i != nil && len(i.secret) > 0
}

func (i *Issuer) Issue(claims auth.Claims, ttl time.Duration) (string, error) {
	if !i.IsConfigured() {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return "", fmt.Errorf("%w: empty user id", ErrInvalidToken)
	}

	now := i.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &appClaims{
		Email: claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   claims.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})
	return tok.SignedString(i.secret)
}

func (i *Issuer) Verify(ctx context.Context, tokenString string) (auth.Claims, error) {
	if !i.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &appClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*appClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
