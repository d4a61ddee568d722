// Package handler exposes HTTP handlers for the public movie endpoints.
// Every route is read-only: it parses its path parameter, issues exactly one
// store query and writes the result as JSON. The status used for store
// failures differs per route; existing clients branch on it.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/movie-query-api/internal/middleware"
	"github.com/iliyamo/movie-query-api/internal/model"
	"github.com/iliyamo/movie-query-api/internal/repository"
)

// PerPage is the fixed page size of GET /movies/page/:page.
const PerPage = 10

const (
	msgIDNotNumeric  = "You must enter the number of the movie ID"
	msgMovieNotFound = "A movie with the required id does not exist. Try again."
)

// MovieHandler serves the movie routes from an injected store.
type MovieHandler struct {
	Store repository.MovieStore
}

// NewMovieHandler builds a MovieHandler around store.
func NewMovieHandler(store repository.MovieStore) *MovieHandler {
	return &MovieHandler{Store: store}
}

// ListMovies returns every movie. A store failure is written back as the
// raw error value with status 200.
func (h *MovieHandler) ListMovies(c echo.Context) error {
	ctx := c.Request().Context()
	movies, err := h.Store.FindAll(ctx, repository.MovieFilter{}, repository.FindOptions{})
	if err != nil {
		logStoreError(c, err)
		return c.JSON(http.StatusOK, err)
	}
	return c.JSON(http.StatusOK, movies)
}

// GetMovie returns the movie whose show_id equals :id. Non-numeric ids are
// rejected before the store is queried.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	idp, err := parseIDParam(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": msgIDNotNumeric})
	}
	if !idp.Valid {
		return c.JSON(http.StatusNotFound, echo.Map{"error": msgMovieNotFound})
	}
	m, err := h.Store.FindOne(c.Request().Context(), repository.ByShowID(idp.ID))
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": msgMovieNotFound})
		}
		logStoreError(c, err)
		return c.JSON(http.StatusOK, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, m)
}

// GetMoviesByType returns movies whose type equals :type verbatim.
func (h *MovieHandler) GetMoviesByType(c echo.Context) error {
	return h.findAll(c, repository.ByType(c.Param("type")), repository.FindOptions{})
}

// GetMoviesByYear returns movies released in :year. A year that does not
// coerce to an integer matches nothing, so the store is not consulted.
func (h *MovieHandler) GetMoviesByYear(c echo.Context) error {
	yp := parseYearParam(c.Param("year"))
	if !yp.Valid {
		return c.JSON(http.StatusOK, []model.Movie{})
	}
	return h.findAll(c, repository.ByReleaseYear(yp.Year), repository.FindOptions{})
}

// GetMoviesByRating returns movies whose rating equals :rating verbatim.
func (h *MovieHandler) GetMoviesByRating(c echo.Context) error {
	return h.findAll(c, repository.ByRating(c.Param("rating")), repository.FindOptions{})
}

// GetMoviesPage returns up to PerPage movies starting at (page-1)*PerPage.
func (h *MovieHandler) GetMoviesPage(c echo.Context) error {
	pp := parsePageParam(c.Param("page"), PerPage)
	return h.findAll(c, repository.MovieFilter{}, repository.FindOptions{Skip: pp.Skip, Limit: PerPage})
}

func (h *MovieHandler) findAll(c echo.Context, f repository.MovieFilter, opts repository.FindOptions) error {
	movies, err := h.Store.FindAll(c.Request().Context(), f, opts)
	if err != nil {
		logStoreError(c, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, movies)
}

// logStoreError records a store failure and keeps the error response out of
// the response cache.
func logStoreError(c echo.Context, err error) {
	middleware.SkipCache(c)
	zerolog.Ctx(c.Request().Context()).Warn().
		Err(err).
		Str("route", c.Path()).
		Msg("movie store query failed")
}
