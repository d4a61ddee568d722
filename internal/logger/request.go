package logger

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger attaches l to every request context (handlers reach it with
// zerolog.Ctx) and writes one line per completed request. 5xx responses are
// logged at error level, 4xx at warn, the rest at info.
func RequestLogger(l zerolog.Logger) echo.MiddlewareFunc {
	logValues := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			var ev *zerolog.Event
			switch {
			case v.Status >= 500:
				ev = l.Error()
			case v.Status >= 400:
				ev = l.Warn()
			default:
				ev = l.Info()
			}
			if v.Error != nil {
				ev = ev.Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Str("route", v.RoutePath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := logValues(next)
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))
			return logged(c)
		}
	}
}
