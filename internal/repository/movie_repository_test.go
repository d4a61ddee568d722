package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var movieCols = []string{
	"show_id", "type", "title", "director", "cast", "country", "date_added",
	"release_year", "rating", "duration", "listed_in", "description",
}

func movieRow(id int64, typ string, year int64, rating string) []driver.Value {
	return []driver.Value{id, typ, "t", "", "", "", "", year, rating, "", "", ""}
}

func newMockRepo(t *testing.T) (*MovieRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewMovieRepo(db), mock
}

func TestMovieRepo_FindAllNoFilter(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`FROM movies WHERE 1=1$`).
		WillReturnRows(sqlmock.NewRows(movieCols).
			AddRow(movieRow(1, "Movie", 2020, "PG")...).
			AddRow(movieRow(2, "TV Show", 2019, "TV-MA")...))

	got, err := repo.FindAll(context.Background(), MovieFilter{}, FindOptions{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(got) != 2 || got[0].ShowID != 1 || got[1].Type != "TV Show" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMovieRepo_FindAllEmptyIsNonNil(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`WHERE type = \?`).WithArgs("Nope").
		WillReturnRows(sqlmock.NewRows(movieCols))

	got, err := repo.FindAll(context.Background(), ByType("Nope"), FindOptions{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestMovieRepo_FindAllFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter MovieFilter
		query  string
		arg    driver.Value
	}{
		{"type", ByType("Movie"), `WHERE type = \?$`, "Movie"},
		{"year", ByReleaseYear(2020), `WHERE release_year = \?$`, int64(2020)},
		{"rating", ByRating("TV-14"), `WHERE rating = \?$`, "TV-14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(tt.query).WithArgs(tt.arg).
				WillReturnRows(sqlmock.NewRows(movieCols).AddRow(movieRow(7, "Movie", 2020, "TV-14")...))
			got, err := repo.FindAll(context.Background(), tt.filter, FindOptions{})
			if err != nil {
				t.Fatalf("FindAll: %v", err)
			}
			if len(got) != 1 || got[0].ShowID != 7 {
				t.Fatalf("unexpected rows: %+v", got)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestMovieRepo_FindAllPaging(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`WHERE 1=1 LIMIT \? OFFSET \?$`).WithArgs(int64(10), int64(20)).
		WillReturnRows(sqlmock.NewRows(movieCols))

	if _, err := repo.FindAll(context.Background(), MovieFilter{}, FindOptions{Skip: 20, Limit: 10}); err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMovieRepo_FindAllSkipWithoutLimit(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`LIMIT 18446744073709551615 OFFSET \?$`).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(movieCols))

	if _, err := repo.FindAll(context.Background(), MovieFilter{}, FindOptions{Skip: 5}); err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMovieRepo_FindAllNegativeSkip(t *testing.T) {
	repo, mock := newMockRepo(t)
	_, err := repo.FindAll(context.Background(), MovieFilter{}, FindOptions{Skip: -10, Limit: 10})
	if !errors.Is(err, ErrNegativeSkip) {
		t.Fatalf("expected ErrNegativeSkip, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query should be issued: %v", err)
	}
}

func TestMovieRepo_FindAllDriverErrorIsUnwrapped(t *testing.T) {
	repo, mock := newMockRepo(t)
	driverErr := &mysql.MySQLError{Number: 1146, Message: "Table 'netflix.movies' doesn't exist"}
	mock.ExpectQuery(`FROM movies`).WillReturnError(driverErr)

	_, err := repo.FindAll(context.Background(), MovieFilter{}, FindOptions{})
	var got *mysql.MySQLError
	if !errors.As(err, &got) || got.Number != 1146 {
		t.Fatalf("expected MySQLError 1146, got %v", err)
	}
}

func TestMovieRepo_FindOne(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`WHERE show_id = \? LIMIT 1$`).WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(movieCols).AddRow(movieRow(42, "Movie", 2001, "R")...))

	m, err := repo.FindOne(context.Background(), ByShowID(42))
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if m.ShowID != 42 || m.Rating != "R" || m.ReleaseYear != 2001 {
		t.Fatalf("unexpected movie: %+v", m)
	}
}

func TestMovieRepo_FindOneNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`WHERE show_id = \?`).WithArgs(int64(999999)).
		WillReturnRows(sqlmock.NewRows(movieCols))

	_, err := repo.FindOne(context.Background(), ByShowID(999999))
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}
