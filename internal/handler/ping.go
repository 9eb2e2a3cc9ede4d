package handler

import (
	"net/http"

	"github.com/burdstermcfc/site-app/internal/api"
	"github.com/burdstermcfc/site-app/internal/cache"
	"github.com/burdstermcfc/site-app/internal/database"

	"github.com/labstack/echo/v4"
)

// PingHandler health check
// @Summary     Health Check
// @Description Returns pong after checking the database and, when configured, redis
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if err := db.Ping(ctx.Request().Context()); err != nil {
			return InternalError(ctx, err, "database unhealthy")
		}
		if c != nil {
			if err := c.Ping(ctx.Request().Context()).Err(); err != nil {
				return InternalError(ctx, err, "cache unhealthy")
			}
		}
		return ctx.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
