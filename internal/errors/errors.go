// Package errors provides the typed error taxonomy used across the analysis
// pipeline. Every stage wraps its failures in an AppError so callers can
// classify them without string matching.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies a pipeline failure by the stage that produced it.
type ErrorType string

const (
	ErrTypeFetch      ErrorType = "FETCH"
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeCleaning   ErrorType = "CLEANING"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeAnalysis   ErrorType = "ANALYSIS"
	ErrTypeRender     ErrorType = "RENDER"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeConfig     ErrorType = "CONFIG"
)

// AppError is an application error carrying a stage type, a message, the
// wrapped cause, and optional context values.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair to the error and returns it.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates an AppError of the given type.
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewFetchError creates a download-related error.
func NewFetchError(message string, cause error) *AppError {
	return New(ErrTypeFetch, message, cause)
}

// NewParsingError creates a CSV parsing error.
func NewParsingError(message string, cause error) *AppError {
	return New(ErrTypeParsing, message, cause)
}

// NewCleaningError creates a data-cleaning error.
func NewCleaningError(message string, cause error) *AppError {
	return New(ErrTypeCleaning, message, cause)
}

// NewValidationError creates a record-validation error.
func NewValidationError(message string, cause error) *AppError {
	return New(ErrTypeValidation, message, cause)
}

// NewAnalysisError creates a statistics-stage error.
func NewAnalysisError(message string, cause error) *AppError {
	return New(ErrTypeAnalysis, message, cause)
}

// NewRenderError creates a chart-rendering error.
func NewRenderError(message string, cause error) *AppError {
	return New(ErrTypeRender, message, cause)
}

// NewStorageError creates a file-output error.
func NewStorageError(message string, cause error) *AppError {
	return New(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, cause error) *AppError {
	return New(ErrTypeConfig, message, cause)
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// TypeOf returns the ErrorType of err, or an empty string when err is not an
// AppError.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}
