package llcases

import (
	"errors"
	"fmt"
)

var (
	errUnknownBase        = errors.New("unrecognized move")
	errDuplicateModifier  = errors.New("repeated modifier")
	errFingerprintLength  = errors.New("fingerprint has the wrong length")
	errFingerprintContent = errors.New("fingerprint must contain only 0 and 1")
)

// CaseError is the base error type for case database
// operations. Every specific error type embeds it.
type CaseError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Err     error  // Underlying error (optional)
}

// Error returns the formatted error message.
func (e *CaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error chaining.
func (e *CaseError) Unwrap() error {
	return e.Err
}

// InvalidNotationError is returned when an algorithm
// contains a token that is not a known move.
type InvalidNotationError struct {
	CaseError
	Token    string
	Position int
}

// MissingFieldError is returned when a case record lacks
// one of the fields a repair pass needs.
type MissingFieldError struct {
	CaseError
	RecordIndex int
	Field       string
}

// StorageError is returned when the case collection
// cannot be read or written.
type StorageError struct {
	CaseError
	Path string
}

// NewInvalidNotationError creates a new InvalidNotationError
// for the token at the given position.
func NewInvalidNotationError(token string, position int, err error) *InvalidNotationError {
	return &InvalidNotationError{
		CaseError: CaseError{
			Code:    "invalid_notation",
			Message: fmt.Sprintf("token %d %q", position, token),
			Err:     err,
		},
		Token:    token,
		Position: position,
	}
}

// NewMissingFieldError creates a new MissingFieldError.
func NewMissingFieldError(recordIndex int, id, field string) *MissingFieldError {
	name := id
	if name == "" {
		name = fmt.Sprintf("#%d", recordIndex)
	}
	return &MissingFieldError{
		CaseError: CaseError{
			Code:    "missing_record_field",
			Message: fmt.Sprintf("record %s has no %s", name, field),
		},
		RecordIndex: recordIndex,
		Field:       field,
	}
}

// NewStorageError creates a new StorageError.
func NewStorageError(message, path string, err error) *StorageError {
	return &StorageError{
		CaseError: CaseError{
			Code:    "storage_io_failure",
			Message: fmt.Sprintf("%s %s", message, path),
			Err:     err,
		},
		Path: path,
	}
}
