package sqlite

import "database/sql"

// applySchema runs schema initialization. Embedded rather than a migration
// tool: there is a single table and it only ever grows columns.
func applySchema(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	return err
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS links (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  short_code TEXT    NOT NULL UNIQUE,
  long_url   TEXT    NOT NULL UNIQUE,
  compressed TEXT    NOT NULL,
  bit_len    INTEGER NOT NULL,
  code_table TEXT    NOT NULL,
  created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_links_compressed ON links(compressed);
`
