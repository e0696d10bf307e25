// ABOUTME: Typed errors for the signage core (missing entities, invalid layout edits, upstream failures)
// ABOUTME: Handlers map these onto HTTP statuses; feed failures never reach this layer

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a screen, content item or schedule does not exist
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError is returned for layout edits and requests that break an invariant
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError describes a failed call to an upstream service such as the feed proxy
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// ScreenNotFound builds the NotFoundError for a screen id
func ScreenNotFound(id string) error {
	return &NotFoundError{Resource: "screen", ID: id}
}

// ContentNotFound builds the NotFoundError for a content id
func ContentNotFound(id string) error {
	return &NotFoundError{Resource: "content", ID: id}
}

// ScheduleNotFound builds the NotFoundError for a schedule id
func ScheduleNotFound(id string) error {
	return &NotFoundError{Resource: "schedule", ID: id}
}

// Invalid builds a ValidationError
func Invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
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

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
