package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pg unique_violation
const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation. The toggle and rating paths use this to tell "someone else got
// there first" apart from a real failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
