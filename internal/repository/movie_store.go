package repository

import (
	"context"

	"github.com/iliyamo/movie-query-api/internal/model"
)

// MovieStore is the read-only query capability the HTTP layer depends on.
// Implementations must be safe for concurrent use.
type MovieStore interface {
	// FindAll returns every record matching the filter, honouring skip and
	// limit. An empty result is an empty, non-nil slice.
	FindAll(ctx context.Context, f MovieFilter, opts FindOptions) ([]model.Movie, error)
	// FindOne returns the first record matching the filter or
	// ErrMovieNotFound.
	FindOne(ctx context.Context, f MovieFilter) (*model.Movie, error)
}

// MovieFilter holds optional exact-match conditions. Nil fields are ignored,
// so the zero value matches every record.
type MovieFilter struct {
	ShowID      *int64
	Type        *string
	ReleaseYear *int
	Rating      *string
}

// FindOptions carries pagination modifiers. A zero Limit means unlimited.
type FindOptions struct {
	Skip  int64
	Limit int64
}

// ByShowID, ByType, ByReleaseYear and ByRating build single-field filters.
func ByShowID(id int64) MovieFilter { return MovieFilter{ShowID: &id} }
func ByType(t string) MovieFilter { return MovieFilter{Type: &t} }
func ByReleaseYear(y int) MovieFilter { return MovieFilter{ReleaseYear: &y} }
func ByRating(r string) MovieFilter { return MovieFilter{Rating: &r} }
