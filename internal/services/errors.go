package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorKind classifies service errors for the HTTP boundary
type ErrorKind string

const (
	// KindNotFound means an identifier did not resolve to a row
	KindNotFound ErrorKind = "not_found"
	// KindBadRequest means the input was rejected before or by the store
	KindBadRequest ErrorKind = "bad_request"
	// KindConflict means a uniqueness constraint was violated on create
	KindConflict ErrorKind = "conflict"
	// KindStore covers every other store failure
	KindStore ErrorKind = "store"
)

// Error is the error type returned by every service operation
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates a not found error
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest creates a bad request error
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a conflict error
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindStore for errors not created here
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindStore
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool { return err != nil && KindOf(err) == KindNotFound }

// IsConflict reports whether err is a conflict error
func IsConflict(err error) bool { return err != nil && KindOf(err) == KindConflict }

// IsBadRequest reports whether err is a bad request error
func IsBadRequest(err error) bool { return err != nil && KindOf(err) == KindBadRequest }

// storeError wraps a store failure. Service errors pass through unchanged and
// uniqueness violations become conflicts carrying conflictMsg.
func storeError(err error, op string, conflictMsg string) error {
	if err == nil {
		return nil
	}
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return err
	}
	if conflictMsg != "" && isDuplicateKey(err) {
		return &Error{Kind: KindConflict, Message: conflictMsg, Err: err}
	}
	return &Error{Kind: KindStore, Message: op + " failed", Err: err}
}

// isDuplicateKey recognizes unique constraint violations across dialects.
// TranslateError covers most drivers; the rest are matched on their native errors.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Cannot insert duplicate key")
}
