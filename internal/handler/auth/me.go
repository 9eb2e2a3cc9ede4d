package auth

import (
	"errors"
	"net/http"

	"github.com/burdstermcfc/site-app/internal/api"
	"github.com/burdstermcfc/site-app/internal/database"
	"github.com/burdstermcfc/site-app/internal/handler"
	"github.com/burdstermcfc/site-app/internal/store"

	"github.com/labstack/echo/v4"
)

var getUserByID = store.GetUserByID

// MeHandler returns the caller's account
// @Summary     Current user
// @Description Loads the account named by the token. A token that outlives its account answers 404.
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /me [get]
func MeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := handler.CurrentUser(c)
		if err != nil {
			return err
		}
		u, err := getUserByID(c.Request().Context(), db, claims.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return handler.Error(c, http.StatusNotFound, "User not found")
			}
			return handler.InternalError(c, err, "Failed to load user")
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*u))
	}
}
