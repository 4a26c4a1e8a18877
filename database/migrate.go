package database

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

// Applies the embedded DDL. Statements use IF NOT EXISTS, so the call is
// safe on every startup.
func Migrate(db *sqlx.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("applySchema: %w", err)
		}
	}
	return nil
}
