package core

import (
	"errors"

	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
)

// HandlerError represents an error that occurred during handler execution
type HandlerError struct {
	Err error

	// User-friendly message to display
	UserMessage string

	// Code is the application error code used to pick the message
	Code apperr.Code
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error with a user-friendly message
func NewUserError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		Code:        apperr.CodeInvalidArgument,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *HandlerError {
	return &HandlerError{
		UserMessage: resource + " not found",
		Code:        apperr.CodeNotFound,
	}
}

// UserMessage turns any error into text that is safe to show in Discord.
// Internal failures get a generic message.
func UserMessage(err error) string {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) && handlerErr.UserMessage != "" {
		return handlerErr.UserMessage
	}

	switch apperr.GetCode(err) {
	case apperr.CodeInvalidArgument, apperr.CodeInvalidSelection:
		if msg := innermostMessage(err); msg != "" {
			return "That choice isn't valid: " + msg
		}
		return "That choice isn't valid."
	case apperr.CodeNotFound:
		return "This calculator has expired. Run /enhance to start a new one."
	case apperr.CodeUnavailable:
		return "The calculator is temporarily unavailable. Please try again shortly."
	}
	return "An internal error occurred. Please try again later."
}

// innermostMessage returns the message of the deepest application error in the chain
func innermostMessage(err error) string {
	msg := ""
	for err != nil {
		if appErr, ok := err.(*apperr.Error); ok {
			msg = appErr.Message
		}
		err = errors.Unwrap(err)
	}
	return msg
}
