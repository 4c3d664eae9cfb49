package db

import (
	"database/sql"
)

// QueryRower is the minimal query surface shared by *sql.DB and *sql.Tx.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// HasTable reports whether the current schema has the table. Connection
// errors read as false; callers fall back to defaults or typed errors.
func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}
