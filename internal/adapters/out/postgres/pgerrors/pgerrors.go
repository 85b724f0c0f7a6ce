// Package pgerrors turns PostgreSQL concurrency failures into
// errs.PersistenceConflictError so callers can tell "retry" apart from
// "broken".
package pgerrors

import (
	"errors"

	"logistics/internal/metrics"
	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that mean the transaction lost a race and may be retried.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Classify wraps err into a PersistenceConflictError when it is a retryable
// concurrency failure and returns it unchanged otherwise.
func Classify(err error, paramName string, id any) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		metrics.PersistenceConflicts.WithLabelValues(pgErr.Code).Inc()
		return errs.NewPersistenceConflictErrorWithCause(paramName, id, err)
	default:
		return err
	}
}

// Conflict reports a lost optimistic version check.
func Conflict(paramName string, id any) error {
	metrics.PersistenceConflicts.WithLabelValues("version").Inc()
	return errs.NewPersistenceConflictError(paramName, id)
}
