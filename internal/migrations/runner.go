package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func setup() {
	goose.SetDialect("postgres")
	goose.SetBaseFS(Postgres)
}

// Up migrates the postgres schema to the latest version.
func Up(db *sql.DB) error {
	setup()
	return goose.Up(db, "postgres")
}

// Down rolls back a single migration.
func Down(db *sql.DB) error {
	setup()
	return goose.Down(db, "postgres")
}

// Status prints migration status.
func Status(db *sql.DB) error {
	setup()
	return goose.Status(db, "postgres")
}
