package router

import (
	"github.com/burdstermcfc/site-app/internal/api"
	"github.com/burdstermcfc/site-app/internal/cache"
	"github.com/burdstermcfc/site-app/internal/database"
	"github.com/burdstermcfc/site-app/internal/handler"
	"github.com/burdstermcfc/site-app/internal/handler/auth"
	"github.com/burdstermcfc/site-app/internal/handler/projects"
	"github.com/burdstermcfc/site-app/internal/handler/snags"
	"github.com/burdstermcfc/site-app/internal/logging"
	"github.com/burdstermcfc/site-app/internal/metrics"
	"github.com/burdstermcfc/site-app/internal/middleware"
	"github.com/burdstermcfc/site-app/internal/service"
	"github.com/burdstermcfc/site-app/internal/tracing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// Credentials registers and authenticates users.
type Credentials interface {
	auth.Registrar
	auth.Authenticator
}

// Deps are the collaborators the routes need. Cache and AuthLimiter are
// optional.
type Deps struct {
	DB          database.DB
	Cache       cache.Cache
	Credentials Credentials
	Tokens      service.Tokens
	Metrics     *metrics.Metrics
	Logger      *logrus.Logger
	AuthLimiter *middleware.RateLimiter
	CORSOrigins []string
	ServiceName string
}

// Setup installs the global middleware and registers every route.
func Setup(e *echo.Echo, d Deps) {
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	if d.Logger == nil {
		d.Logger = logrus.StandardLogger()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.ServiceName == "" {
		d.ServiceName = "site-app"
	}
	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(logging.RequestLogger(d.Logger))
	e.Use(tracing.Middleware(d.ServiceName))
	e.Use(d.Metrics.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomw.BodyLimit("1M"))

	e.GET("/metrics", d.Metrics.Handler())

	apiGroup := e.Group("/api")

	// health check
	apiGroup.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// account
	var limited []echo.MiddlewareFunc
	if d.AuthLimiter != nil {
		limited = append(limited, d.AuthLimiter.Middleware())
	}
	requireAuth := middleware.RequireAuth(d.Tokens)
	apiGroup.POST("/register", auth.RegisterHandler(d.Credentials, d.Metrics), limited...)
	apiGroup.POST("/login", auth.LoginHandler(d.Credentials, d.Tokens, d.Metrics), limited...)
	apiGroup.POST("/logout", auth.LogoutHandler(d.Tokens, d.Metrics), requireAuth)
	apiGroup.GET("/me", auth.MeHandler(d.DB), requireAuth)

	// projects owned by the caller
	apiProjects := apiGroup.Group("/projects", requireAuth)
	apiProjects.GET("", projects.ListProjectsHandler(d.DB))
	apiProjects.POST("", projects.CreateProjectHandler(d.DB))
	apiProjects.GET("/:projectId", projects.GetProjectHandler(d.DB))
	apiProjects.DELETE("/:projectId", projects.DeleteProjectHandler(d.DB))

	// snags under a project
	apiProjects.GET("/:projectId/snags", snags.ListSnagsHandler(d.DB))
	apiProjects.POST("/:projectId/snags", snags.CreateSnagHandler(d.DB))
	apiProjects.PATCH("/:projectId/snags/:snagId", snags.UpdateSnagStatusHandler(d.DB))
}
