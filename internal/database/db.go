package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(ctx context.Context, user, pass, host, port, name string) (*sql.DB, error) {
	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = host + ":" + port
	cfg.DBName = name
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	// Pool settings; the service only reads, so idle connections are cheap to keep.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql %s: %w", cfg.Addr, err)
	}
	return db, nil
}

// moviesDDL mirrors the catalogue CSV layout. Descriptive columns stay
// nullable because imported rows frequently lack them.
const moviesDDL = "CREATE TABLE IF NOT EXISTS movies (" +
	"show_id BIGINT NOT NULL PRIMARY KEY, " +
	"type VARCHAR(32) NOT NULL, " +
	"title VARCHAR(512) NULL, " +
	"director TEXT NULL, " +
	"`cast` TEXT NULL, " +
	"country VARCHAR(512) NULL, " +
	"date_added VARCHAR(64) NULL, " +
	"release_year INT NOT NULL, " +
	"rating VARCHAR(32) NULL, " +
	"duration VARCHAR(32) NULL, " +
	"listed_in VARCHAR(512) NULL, " +
	"description TEXT NULL, " +
	"KEY idx_movies_type (type), " +
	"KEY idx_movies_release_year (release_year), " +
	"KEY idx_movies_rating (rating)" +
	") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"

// EnsureSchema creates the movies table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, moviesDDL); err != nil {
		return fmt.Errorf("ensure movies table: %w", err)
	}
	return nil
}
