package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/dsmelov/blogstore-backend/errs"
)

// PostgreSQL SQLSTATE codes the store cares about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError converts engine failures into the store's typed errors:
// missing records become NotFound, constraint violations on the non-validated
// write path become IntegrityError, anything else is wrapped with operation
// context.
func translateError(operation, entity string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return errs.NewIntegrityError(entity, pgErr.ConstraintName, err)
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewIntegrityError(entity, "", err)
	}

	return errs.NewDatabaseError(operation, entity, err)
}
