package sqlite

import "github.com/jmoiron/sqlx"

// schema holds the SQL statements to set up the database.
// These run on startup to ensure tables exist.
// The snapshot is a single opaque value; the table is a plain key-value slot.
const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
