package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/movie-query-api/internal/queue"
)

// EventPublisher is the part of the queue publisher the audit middleware
// needs.
type EventPublisher interface {
	PublishMovieQueried(ctx context.Context, ev queue.MovieQueriedEvent) error
}

const auditPublishTimeout = 2 * time.Second

// Audit publishes one MovieQueriedEvent after each request completes. The
// publish happens off the request goroutine, so a slow or absent broker
// never delays or alters the response.
func Audit(pub EventPublisher) echo.MiddlewareFunc {
	if pub == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			ev := queue.MovieQueriedEvent{
				Method:     c.Request().Method,
				Route:      c.Path(),
				Path:       c.Request().URL.Path,
				Params:     pathParams(c),
				Status:     c.Response().Status,
				RemoteIP:   c.RealIP(),
				LatencyMs:  time.Since(start).Milliseconds(),
				Cache:      c.Response().Header().Get("X-Cache"),
				OccurredAt: start.UTC().Format(time.RFC3339),
			}
			log := zerolog.Ctx(c.Request().Context())
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), auditPublishTimeout)
				defer cancel()
				if perr := pub.PublishMovieQueried(ctx, ev); perr != nil {
					log.Warn().Err(perr).Str("path", ev.Path).Msg("audit publish failed")
				}
			}()
			return nil
		}
	}
}

func pathParams(c echo.Context) map[string]string {
	names := c.ParamNames()
	if len(names) == 0 {
		return nil
	}
	out := make(map[string]string, len(names))
	for i, n := range names {
		if vals := c.ParamValues(); i < len(vals) {
			out[n] = vals[i]
		}
	}
	return out
}
