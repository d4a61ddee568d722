// Package repository contains data access logic separated from HTTP handlers.
// This file implements MovieStore on top of MySQL. The movies table is
// read-only from this service's point of view; rows are loaded by whatever
// process owns the catalogue.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sql.ErrNoRows
	"strings"      // strings joins WHERE fragments

	"github.com/iliyamo/movie-query-api/internal/model"
)

// movieColumns lists the selected columns in scan order. Descriptive columns
// are nullable in imported catalogues, so they are coalesced to "".
const movieColumns = "show_id, type, COALESCE(title, ''), COALESCE(director, ''), COALESCE(`cast`, ''), " +
	"COALESCE(country, ''), COALESCE(date_added, ''), release_year, COALESCE(rating, ''), " +
	"COALESCE(duration, ''), COALESCE(listed_in, ''), COALESCE(description, '')"

// maxRows is the documented MySQL idiom for "OFFSET without LIMIT".
const maxRows = "18446744073709551615"

// MovieRepo encapsulates all database queries related to movies. It
// depends on a sql.DB connection which should be configured elsewhere.
type MovieRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

var _ MovieStore = (*MovieRepo)(nil)

// NewMovieRepo constructs a MovieRepo with the provided DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// FindAll returns the movies matching f in the table's natural order.
// Driver errors are returned as-is so callers can surface them verbatim.
func (r *MovieRepo) FindAll(ctx context.Context, f MovieFilter, opts FindOptions) ([]model.Movie, error) {
	if opts.Skip < 0 {
		return nil, ErrNegativeSkip
	}
	cond, args := whereClause(f)
	q := "SELECT " + movieColumns + " FROM movies WHERE " + cond

	switch {
	case opts.Limit > 0:
		q += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Skip)
	case opts.Skip > 0:
		q += " LIMIT " + maxRows + " OFFSET ?"
		args = append(args, opts.Skip)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindOne fetches the first movie matching f. It returns ErrMovieNotFound
// if no row is found.
func (r *MovieRepo) FindOne(ctx context.Context, f MovieFilter) (*model.Movie, error) {
	cond, args := whereClause(f)
	q := "SELECT " + movieColumns + " FROM movies WHERE " + cond + " LIMIT 1"
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, args...), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMovie(s scanner, m *model.Movie) error {
	return s.Scan(
		&m.ShowID,
		&m.Type,
		&m.Title,
		&m.Director,
		&m.Cast,
		&m.Country,
		&m.DateAdded,
		&m.ReleaseYear,
		&m.Rating,
		&m.Duration,
		&m.ListedIn,
		&m.Description,
	)
}

func whereClause(f MovieFilter) (string, []any) {
	where := []string{}
	args := []any{}
	if f.ShowID != nil {
		where = append(where, "show_id = ?")
		args = append(args, *f.ShowID)
	}
	if f.Type != nil {
		where = append(where, "type = ?")
		args = append(args, *f.Type)
	}
	if f.ReleaseYear != nil {
		where = append(where, "release_year = ?")
		args = append(args, *f.ReleaseYear)
	}
	if f.Rating != nil {
		where = append(where, "rating = ?")
		args = append(args, *f.Rating)
	}
	if len(where) == 0 {
		return "1=1", args
	}
	return strings.Join(where, " AND "), args
}
