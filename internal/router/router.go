package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/movie-query-api/internal/handler"
)

// RegisterRoutes registers operational routes on the provided Echo instance:
// the health check used by load balancers and the Prometheus scrape endpoint.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterMovies registers the read-only movie endpoints. Any middleware
// passed in (cache, rate limit, audit) applies to the movie routes only.
// Static segments such as /movies/type take precedence over /movies/:id in
// Echo's router, so the registration order does not matter.
func RegisterMovies(e *echo.Echo, m *handler.MovieHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/movies", mw...)
	g.GET("", m.ListMovies)
	g.GET("/:id", m.GetMovie)
	g.GET("/type/:type", m.GetMoviesByType)
	g.GET("/year/:year", m.GetMoviesByYear)
	g.GET("/rating/:rating", m.GetMoviesByRating)
	g.GET("/page/:page", m.GetMoviesPage)
}
