package auth

import (
	"errors"
	"net/http"

	"github.com/burdstermcfc/site-app/internal/api"
	"github.com/burdstermcfc/site-app/internal/handler"
	"github.com/burdstermcfc/site-app/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler creates a user account
// @Summary     Register a user
// @Description Creates an account. The email is stored exactly as given.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "New account"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(creds Registrar, obs Observer) echo.HandlerFunc {
	obs = observer(obs)
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return handler.Error(c, http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, http.StatusBadRequest, api.ValidationMessage(err))
		}

		u, err := creds.Register(c.Request().Context(), req.Name, req.Email, req.Password)
		if err != nil {
			for _, known := range []error{service.ErrMissingFields, service.ErrEmailInUse, service.ErrPasswordTooLong} {
				if errors.Is(err, known) {
					obs.ObserveAuth("register", "rejected")
					return handler.Error(c, http.StatusBadRequest, known.Error())
				}
			}
			obs.ObserveAuth("register", "error")
			return handler.InternalError(c, err, "Registration failed")
		}

		obs.ObserveAuth("register", "success")
		return c.JSON(http.StatusCreated, api.NewUserResponse(*u))
	}
}
