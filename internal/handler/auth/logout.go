package auth

import (
	"net/http"

	"github.com/burdstermcfc/site-app/internal/handler"
	"github.com/burdstermcfc/site-app/internal/service"

	"github.com/labstack/echo/v4"
)

// LogoutHandler revokes the caller's token when revocation is configured
// @Summary     Log out
// @Description Revokes the presented token until it expires. Without redis this is a no-op and the client discards the token.
// @Tags        auth
// @Success     204
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /logout [post]
func LogoutHandler(revoker service.TokenRevoker, obs Observer) echo.HandlerFunc {
	obs = observer(obs)
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return err
		}
		if err := revoker.RevokeAccessToken(c.Request().Context(), claims); err != nil {
			obs.ObserveAuth("logout", "error")
			return handler.InternalError(c, err, "Logout failed")
		}
		obs.ObserveAuth("logout", "success")
		return c.NoContent(http.StatusNoContent)
	}
}
