// ABOUTME: Custom error types for the core business logic
// ABOUTME: Distinguishes per-item skips from feed failures and upstream errors

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an upstream site or service
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// SkipError marks a single item as skipped. Collection continues;
// the item is counted and logged, never promoted to a feed failure.
type SkipError struct {
	URL    string
	Reason string
	Cause  error
}

// Error implements the error interface
func (e *SkipError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("skipped %s: %s: %v", e.URL, e.Reason, e.Cause)
	}
	return fmt.Sprintf("skipped %s: %s", e.URL, e.Reason)
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (e *SkipError) Unwrap() error {
	return e.Cause
}

// SkipItem builds a SkipError without a cause
func SkipItem(url, reason string) *SkipError {
	return &SkipError{URL: url, Reason: reason}
}

// SkipItemCause builds a SkipError wrapping an underlying error
func SkipItemCause(url, reason string, cause error) *SkipError {
	return &SkipError{URL: url, Reason: reason, Cause: cause}
}

// MalformedDataError represents data that was located but could not be parsed
type MalformedDataError struct {
	Source  string
	Message string
}

// Error implements the error interface
func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed data in %s: %s", e.Source, e.Message)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsSkip checks if an error is a SkipError
func IsSkip(err error) bool {
	var skipErr *SkipError
	return errors.As(err, &skipErr)
}

// IsMalformedData checks if an error is a MalformedDataError
func IsMalformedData(err error) bool {
	var malformedErr *MalformedDataError
	return errors.As(err, &malformedErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
