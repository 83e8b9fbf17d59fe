package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes failure semantics across the data layer.
type ErrorCode string

const (
	CodeValidation ErrorCode = "validation"
	CodeConflict   ErrorCode = "conflict"
	CodeNotFound   ErrorCode = "not_found"
	CodeForbidden  ErrorCode = "forbidden"
	CodeStorage    ErrorCode = "storage"
)

// Error is the canonical typed error returned by every store operation.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds a typed error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with a code, keeping the cause chain.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// ValidationError tags a user-correctable input failure.
func ValidationError(op, message string) error {
	return NewError(CodeValidation, op, message, nil)
}

// ConflictError tags a unique-constraint or state-guard violation.
func ConflictError(op, message string) error {
	return NewError(CodeConflict, op, message, nil)
}

// NotFoundError tags a missing-entity failure.
func NotFoundError(op, message string) error {
	return NewError(CodeNotFound, op, message, nil)
}

// ForbiddenError tags an authorization failure.
func ForbiddenError(op, message string) error {
	return NewError(CodeForbidden, op, message, nil)
}

// IsCode checks whether err (or a wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var typed *Error
	if !errors.As(err, &typed) {
		return false
	}
	return typed.Code == code
}

// CodeOf extracts the error code when available.
func CodeOf(err error) ErrorCode {
	var typed *Error
	if !errors.As(err, &typed) {
		return ""
	}
	return typed.Code
}
