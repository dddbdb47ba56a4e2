package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS generation_events (
		id         VARCHAR(36) NOT NULL PRIMARY KEY,
		categories VARCHAR(64) NOT NULL,
		pw_length  INT         NOT NULL,
		score      INT         NOT NULL,
		crack_unit VARCHAR(16) NOT NULL,
		created_at TIMESTAMP   NOT NULL
	)`

// NewDB opens a connection pool for driver ("mysql" or "sqlite") with the given DSN.
func NewDB(driver, dsn string) (*sql.DB, error) {
	if driver != DriverMySQL && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// SQLite allows a single writer; in-memory databases are per connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", driver, err)
	}

	return db, nil
}

// Migrate creates the tables used by the event store if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating generation_events: %w", err)
	}
	slog.Debug("database schema ready")
	return nil
}
