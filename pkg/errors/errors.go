package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Manifest errors
	ErrBadPath         ErrorCode = "BAD_PATH"
	ErrManifestRead    ErrorCode = "MANIFEST_READ"
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Aggregation errors
	ErrSourceNotFound       ErrorCode = "SOURCE_NOT_FOUND"
	ErrTargetInspect        ErrorCode = "TARGET_INSPECT"
	ErrUnsupportedPlatform  ErrorCode = "UNSUPPORTED_PLATFORM"
	ErrHomeDirectoryUnknown ErrorCode = "HOME_UNKNOWN"

	// Link execution errors
	ErrBackupNameExhausted ErrorCode = "BACKUP_NAME_EXHAUSTED"
	ErrBackupRename        ErrorCode = "BACKUP_RENAME"
	ErrParentNotDir        ErrorCode = "PARENT_NOT_DIR"
	ErrDirCreate           ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate       ErrorCode = "SYMLINK_CREATE"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// LinkdotError represents a structured error with code and details
type LinkdotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkdotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkdotError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a LinkdotError carrying the same code
func (e *LinkdotError) Is(target error) bool {
	var targetErr *LinkdotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkdotError with the given code and message
func New(code ErrorCode, message string) *LinkdotError {
	return &LinkdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkdotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkdotError {
	return &LinkdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LinkdotError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *LinkdotError {
	if err == nil {
		return nil
	}
	return &LinkdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkdotError {
	if err == nil {
		return nil
	}
	return &LinkdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinkdotError) WithDetail(key string, value interface{}) *LinkdotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var linkErr *LinkdotError
	if errors.As(err, &linkErr) {
		return linkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LinkdotError
func GetErrorCode(err error) ErrorCode {
	var linkErr *LinkdotError
	if errors.As(err, &linkErr) {
		return linkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LinkdotError
func GetErrorDetails(err error) map[string]interface{} {
	var linkErr *LinkdotError
	if errors.As(err, &linkErr) {
		return linkErr.Details
	}
	return nil
}
