package auth

import (
	"errors"
	"net/http"

	"github.com/burdstermcfc/site-app/internal/api"
	"github.com/burdstermcfc/site-app/internal/handler"
	"github.com/burdstermcfc/site-app/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler verifies credentials and returns an access token
// @Summary     Log in
// @Description Verifies email and password and returns a signed access token valid for one hour
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "Credentials"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(creds Authenticator, tokens service.TokenIssuer, obs Observer) echo.HandlerFunc {
	obs = observer(obs)
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return handler.Error(c, http.StatusBadRequest, "invalid request body")
		}

		u, err := creds.VerifyCredentials(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				obs.ObserveAuth("login", "invalid_credentials")
				return handler.Error(c, http.StatusBadRequest, service.ErrInvalidCredentials.Error())
			}
			obs.ObserveAuth("login", "error")
			return handler.InternalError(c, err, "Login failed")
		}

		token, exp, err := tokens.IssueAccessToken(*u)
		if err != nil {
			obs.ObserveAuth("login", "error")
			return handler.InternalError(c, err, "Login failed")
		}

		obs.ObserveAuth("login", "success")
		return c.JSON(http.StatusOK, api.LoginResponse{
			Token:     token,
			User:      api.NewUserResponse(*u),
			ExpiresAt: exp,
		})
	}
}
