package service

import (
	"context"
	"fmt"

	"github.com/burdstermcfc/site-app/internal/cache"
)

// RevocableTokenService adds a redis denylist keyed by token id to
// TokenService. Entries expire together with the token they block.
type RevocableTokenService struct {
	*TokenService
	cache cache.Cache
}

func NewRevocableTokenService(ts *TokenService, c cache.Cache) *RevocableTokenService {
	return &RevocableTokenService{TokenService: ts, cache: c}
}

func revokedKey(jti string) string {
	return cache.Key("revoked", jti)
}

// VerifyAccessToken fails with ErrTokenRevoked for denylisted tokens. A
// cache error fails the check rather than letting the token through.
func (s *RevocableTokenService) VerifyAccessToken(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.TokenService.VerifyAccessToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if claims.RegisteredClaims.ID == "" {
		return claims, nil
	}

	n, err := s.cache.Exists(ctx, revokedKey(claims.RegisteredClaims.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("VerifyAccessToken: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("VerifyAccessToken: %w", ErrTokenRevoked)
	}
	return claims, nil
}

func (s *RevocableTokenService) RevokeAccessToken(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.RegisteredClaims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, revokedKey(claims.RegisteredClaims.ID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("RevokeAccessToken: %w", err)
	}
	return nil
}
