// Package sqlxrepos implements the domain repositories with raw SQL over sqlx.
package sqlxrepos

import (
	"context"

	"github.com/pkm-kampus/portal/core"
)

// insert runs an INSERT and returns the generated id.
// PostgreSQL has no LastInsertId, so the id is read back with RETURNING.
func insert(ctx context.Context, db core.DBExecutor, query string, args ...interface{}) (int64, error) {
	if db.DriverName() == "postgres" {
		var id int64
		err := db.QueryRowxContext(ctx, db.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func exec(ctx context.Context, db core.DBExecutor, query string, args ...interface{}) error {
	_, err := db.ExecContext(ctx, db.Rebind(query), args...)
	return err
}
