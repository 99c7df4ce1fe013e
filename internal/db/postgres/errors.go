package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a unique constraint breach
const uniqueViolation = "23505"

// isUniqueViolation checks whether err is a unique-violation on the named
// constraint. Repositories use it to turn a constraint breach raised during
// a concurrent race into the same domain error the pre-check would have
// produced, so callers never see raw driver errors for expected conflicts.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation && pqErr.Constraint == constraint
}
