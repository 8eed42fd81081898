package repository

import (
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// The pool connects lazily; a failed ping at boot is worth a warning but
	// not worth refusing to start while the database is still coming up.
	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed — pool will retry on first query", "error", err)
	}

	return db, nil
}
