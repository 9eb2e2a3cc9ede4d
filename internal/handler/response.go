package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/burdstermcfc/site-app/internal/api"
	"github.com/burdstermcfc/site-app/internal/logging"
	"github.com/burdstermcfc/site-app/internal/middleware"
	"github.com/burdstermcfc/site-app/internal/service"

	"github.com/labstack/echo/v4"
)

const msgInternal = "Internal server error"

// Error writes an ErrorResponse with status.
func Error(c echo.Context, status int, msg string) error {
	return c.JSON(status, api.ErrorResponse{Error: msg})
}

// InternalError logs err and answers 500 with msg so internals never reach
// the client.
func InternalError(c echo.Context, err error, msg string) error {
	logging.Entry(c).WithError(err).Error(msg)
	if msg == "" {
		msg = msgInternal
	}
	return Error(c, http.StatusInternalServerError, msg)
}

// ParseID reads a positive integer path parameter.
func ParseID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CurrentUser returns the authenticated caller. Without one it writes
// nothing and returns a 401 *echo.HTTPError for HTTPErrorHandler to render.
func CurrentUser(c echo.Context) (*service.Claims, error) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	return claims, nil
}

// HTTPErrorHandler renders errors that escape handlers, mostly from
// middleware and routing, as ErrorResponse.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := msgInternal
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
		if he.Internal != nil && status >= http.StatusInternalServerError {
			logging.Entry(c).WithError(he.Internal).Error(msg)
		}
	} else {
		logging.Entry(c).WithError(err).Error("unhandled error")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = Error(c, status, msg)
	}
	if err != nil {
		logging.Entry(c).WithError(err).Error("write error response")
	}
}
