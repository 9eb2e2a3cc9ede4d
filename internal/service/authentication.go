package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/burdstermcfc/site-app/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is how long an access token stays valid.
const DefaultTokenTTL = time.Hour

// Claims is the access token payload.
type Claims struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type TokenIssuer interface {
	IssueAccessToken(user model.User) (token string, expiresAt time.Time, err error)
}

type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*Claims, error)
}

type TokenRevoker interface {
	RevokeAccessToken(ctx context.Context, claims *Claims) error
}

// Tokens is everything the HTTP layer needs from a token service.
type Tokens interface {
	TokenIssuer
	TokenVerifier
	TokenRevoker
}

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newJTI          = uuid.NewString
)

// TokenService issues and verifies stateless HS256 tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService fails on an empty secret. ttl <= 0 uses DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("NewTokenService: JWT secret not set")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

func (s *TokenService) IssueAccessToken(user model.User) (string, time.Time, error) {
	now := timeNow()
	exp := now.Add(s.ttl)
	claims := Claims{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        newJTI(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("IssueAccessToken: %w", err)
	}
	return token, exp, nil
}

// VerifyAccessToken checks signature, algorithm and expiry. Every failure
// wraps ErrInvalidToken.
func (s *TokenService) VerifyAccessToken(_ context.Context, tokenString string) (*Claims, error) {
	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		return nil, fmt.Errorf("VerifyAccessToken: %w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("VerifyAccessToken: %w", ErrInvalidToken)
	}
	return claims, nil
}

// RevokeAccessToken is a no-op: stateless tokens live until they expire.
func (s *TokenService) RevokeAccessToken(context.Context, *Claims) error {
	return nil
}
