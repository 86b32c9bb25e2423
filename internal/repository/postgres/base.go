package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jmoiron/sqlx"

	apperrors "github.com/medisuite/hospital-api/pkg/errors"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db *sqlx.DB
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sqlx.DB) BaseRepository {
	return BaseRepository{db: db}
}

// GetDB returns the database instance
func (r *BaseRepository) GetDB() *sqlx.DB {
	return r.db
}

// wrap maps storage errors onto the application taxonomy: a missing
// row becomes NotFound for the named entity, an unreachable server
// becomes StorageUnavailable, anything else passes through wrapped.
func (r *BaseRepository) wrap(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(entity, err)
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) {
		return apperrors.StorageUnavailable(err)
	}
	return fmt.Errorf("%s: %w", entity, err)
}

// affected enforces NotFound on updates and deletes that matched no row.
func (r *BaseRepository) affected(entity string, res sql.Result, err error) error {
	if err != nil {
		return r.wrap(entity, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return r.wrap(entity, err)
	}
	if n == 0 {
		return apperrors.NotFound(entity, sql.ErrNoRows)
	}
	return nil
}
