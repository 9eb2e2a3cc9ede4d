package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

const contextEntryKey = "logger"

// New returns a JSON logrus logger at level. It also becomes the standard
// logger so packages without an injected logger share its settings.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging.New: %w", err)
	}
	if out == nil {
		out = os.Stdout
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.JSONFormatter{})

	logrus.SetOutput(out)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	return l, nil
}

// RequestLogger writes one entry per request and exposes a request scoped
// entry through Entry.
func RequestLogger(l *logrus.Logger) echo.MiddlewareFunc {
	attach := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			fields := logrus.Fields{
				"method": c.Request().Method,
				"uri":    c.Request().RequestURI,
			}
			if rid := requestID(c); rid != "" {
				fields["request_id"] = rid
			}
			c.Set(contextEntryKey, l.WithFields(fields))
			return next(c)
		}
	}
	logReq := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := l.WithFields(logrus.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"remote_ip": v.RemoteIP,
			})
			if v.RequestID != "" {
				entry = entry.WithField("request_id", v.RequestID)
			}
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return logReq(attach(next))
	}
}

// requestID prefers the id echo's RequestID middleware put on the response
// and falls back to one the client sent.
func requestID(c echo.Context) string {
	if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
		return rid
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// Entry returns the request scoped entry, or the standard logger when
// RequestLogger is not installed.
func Entry(c echo.Context) *logrus.Entry {
	if e, ok := c.Get(contextEntryKey).(*logrus.Entry); ok {
		return e
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
