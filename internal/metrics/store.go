package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/movie-query-api/internal/model"
	"github.com/iliyamo/movie-query-api/internal/repository"
)

// InstrumentedStore wraps a MovieStore and records query counts and
// latencies. Results and errors pass through untouched.
type InstrumentedStore struct {
	inner repository.MovieStore
}

var _ repository.MovieStore = (*InstrumentedStore)(nil)

// NewInstrumentedStore wraps inner.
func NewInstrumentedStore(inner repository.MovieStore) *InstrumentedStore {
	return &InstrumentedStore{inner: inner}
}

func (s *InstrumentedStore) FindAll(ctx context.Context, f repository.MovieFilter, opts repository.FindOptions) ([]model.Movie, error) {
	start := time.Now()
	out, err := s.inner.FindAll(ctx, f, opts)
	observe("find_all", start, err)
	return out, err
}

func (s *InstrumentedStore) FindOne(ctx context.Context, f repository.MovieFilter) (*model.Movie, error) {
	start := time.Now()
	out, err := s.inner.FindOne(ctx, f)
	observe("find_one", start, err)
	return out, err
}

func observe(op string, start time.Time, err error) {
	StoreQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	outcome := "ok"
	switch {
	case errors.Is(err, repository.ErrMovieNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	StoreQueriesTotal.WithLabelValues(op, outcome).Inc()
}
