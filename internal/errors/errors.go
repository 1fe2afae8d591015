package errors

import (
	"errors"
	"fmt"
	"os"

	"habittrack/internal/logger"
)

// Sentinel kinds for the recoverable error classes surfaced to the user.
// All of them carry context via wrapping; match with errors.Is.
var (
	// ErrValidation indicates rejected user input (e.g. an empty habit name).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates an operation referenced a habit that does not
	// exist, or is archived where an active habit is required.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates an attempt to record a second completion for the
	// same habit and calendar day.
	ErrDuplicate = errors.New("duplicate")
	// ErrPersistence indicates the underlying store failed. Never swallowed;
	// callers propagate it rather than proceeding with an inconsistent view.
	ErrPersistence = errors.New("persistence failure")
)

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Duplicatef wraps ErrDuplicate with a formatted message.
func Duplicatef(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrDuplicate)...)
}

// Persistence wraps a storage engine error as ErrPersistence, preserving the cause.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

// Persistencef wraps a storage engine error as ErrPersistence with context.
// Both ErrPersistence and the cause remain matchable via errors.Is.
func Persistencef(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(fmt.Sprintf(format, args...)+": %w: %w", ErrPersistence, err)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsDuplicate reports whether err is a duplicate-completion error.
func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicate) }

// IsPersistence reports whether err came from the storage engine.
func IsPersistence(err error) bool { return errors.Is(err, ErrPersistence) }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
