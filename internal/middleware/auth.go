package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/burdstermcfc/site-app/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

const (
	msgMissingToken = "missing token"
	msgInvalidToken = "invalid or expired token"
)

// bearerToken returns the token of an "Authorization: Bearer <token>"
// header. Any other scheme counts as no token.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

// RequireAuth answers 401 when no bearer token is presented and 403 when
// the token does not verify. On success the claims are stored under
// ContextUserKey.
func RequireAuth(verifier service.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, msgMissingToken)
			}
			claims, err := verifier.VerifyAccessToken(c.Request().Context(), tok)
			if err != nil {
				if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrTokenRevoked) {
					return echo.NewHTTPError(http.StatusForbidden, msgInvalidToken).SetInternal(err)
				}
				return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// CurrentUser returns the claims RequireAuth stored on c.
func CurrentUser(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	return claims, ok && claims != nil
}
