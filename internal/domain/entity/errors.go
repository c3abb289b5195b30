package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies import failures for the processing_errors payload.
type ErrorKind string

// ErrorKind values enumerate the import failure classes.
const (
	KindMalformedInput      ErrorKind = "MALFORMED_INPUT"
	KindInvalidField        ErrorKind = "INVALID_FIELD"
	KindUnresolvedReference ErrorKind = "UNRESOLVED_REFERENCE"
	KindPersistenceFailure  ErrorKind = "PERSISTENCE_FAILURE"
	KindInternal            ErrorKind = "INTERNAL"
)

// ImportError is a classified import failure. File-fatal errors reach the
// job driver as this type so the failure kind can be persisted.
type ImportError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a classified import error wrapping a cause.
func NewImportError(kind ErrorKind, cause error, format string, args ...interface{}) *ImportError {
	return &ImportError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// KindOf extracts the error kind, defaulting to INTERNAL for unclassified
// errors.
func KindOf(err error) ErrorKind {
	var ie *ImportError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return KindInternal
}
