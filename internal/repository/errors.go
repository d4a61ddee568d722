// Package repository defines error types that are reused across the movie
// stores. These sentinel values allow higher layers such as handlers to
// distinguish between different failure scenarios. ErrMovieNotFound means a
// lookup succeeded but matched nothing, while ErrNegativeSkip signals a
// pagination request the store refuses to run.
package repository

import "errors"

// ErrMovieNotFound is returned by FindOne when no record matches the
// filter. Handlers should translate this into an HTTP 404 response.
var ErrMovieNotFound = errors.New("movie not found")

// ErrNegativeSkip is returned when a query asks to skip a negative number of
// records. Both backends reject it before talking to the database.
var ErrNegativeSkip = errors.New("skip value must be non-negative")
