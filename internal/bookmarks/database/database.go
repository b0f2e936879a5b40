package database

import (
	"context"
	"database/sql"
	"fmt"

	"markfy/ent"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN keeps a shared in-memory database alive across connections.
const MemoryDSN = "file:markfy?mode=memory&cache=shared&_fk=1"

// Open opens a SQLite-backed ent client. The raw *sql.DB is returned as well
// so callers can ping it for readiness checks. databasePath may be ":memory:".
func Open(databasePath string) (*ent.Client, *sql.DB, error) {
	dsn := MemoryDSN
	if databasePath != ":memory:" {
		dsn = fmt.Sprintf("file:%s?cache=shared&_fk=1", databasePath)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite tolerates a single writer; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	return client, db, nil
}

// Migrate creates or updates the schema resources.
func Migrate(ctx context.Context, client *ent.Client) error {
	if err := client.Schema.Create(ctx); err != nil {
		return fmt.Errorf("failed creating schema resources: %w", err)
	}
	return nil
}
