package repository

import (
	"database/sql"
	"fmt"
)

// requireAffected maps a zero-row write to sql.ErrNoRows so services can
// translate it into a not-found error.
func requireAffected(result sql.Result, entity string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s: %w", entity, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
