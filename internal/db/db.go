package db

import "database/sql"

// DB wraps *sql.DB so repositories depend on an internal type rather
// than database/sql directly.
type DB struct {
	*sql.DB
}
