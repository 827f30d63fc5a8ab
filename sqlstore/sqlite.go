// Package sqlstore is a minimal host persistence layer over database/sql that
// runs every query filter and saved row through a localize.Interceptor.
//
// The default driver is the pure Go modernc.org/sqlite, registered as "sqlite".
package sqlstore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// Open opens a SQLite database with the pure Go driver
func Open(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", dataSourceName, err)
	}
	return db, nil
}

// OpenMemory opens a private in-memory database. The pool is pinned to one
// connection so every statement sees the same database.
func OpenMemory() (*sql.DB, error) {
	db, err := Open(":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
