package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gbenitez/multatrack/internal/validation"
)

var (
	ErrDriverNotFound  = errors.New("driver not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrTicketNotFound  = errors.New("ticket not found")
)

// ValidationError carries every rule violation found in a request.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

const uniqueViolationCode = "23505"

// IsDuplicateKey reports whether an insert failed on a unique index. Letting
// the database enforce uniqueness avoids the check-then-insert race.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
