package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation per the PostgreSQL error code table
const uniqueViolationCode = "23505"

// IsUniqueViolation checks if the error is a PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsUniqueViolationConstraint checks if the error is a PostgreSQL unique
// violation on a specific constraint.
func IsUniqueViolationConstraint(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraintName
}
