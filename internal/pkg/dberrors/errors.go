package dberrors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories care about
const (
	CodeCheckViolation         = "23514"
	CodeInvalidTextRepresent   = "22P02"
	CodeNumericValueOutOfRange = "22003"
)

// Code returns the PostgreSQL SQLSTATE carried by err, or "" when err did not come from the server.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsCheckViolation reports whether a CHECK constraint rejected the row
func IsCheckViolation(err error) bool {
	return Code(err) == CodeCheckViolation
}

// IsBadIdentifier reports whether the server rejected a bound identifier that is not a valid integer.
func IsBadIdentifier(err error) bool {
	code := Code(err)
	return code == CodeInvalidTextRepresent || code == CodeNumericValueOutOfRange
}

// IsCanceled reports whether the statement was abandoned because the request went away.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
