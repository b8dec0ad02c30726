package repository

import (
	"errors"

	"github.com/lib/pq"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

func classifyInsert(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return appErrors.ErrConflict
	}
	return err
}
