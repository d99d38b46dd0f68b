package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_CONFIGURATION
	ErrorCode_INVALID_INPUT
	ErrorCode_NETWORK
	ErrorCode_AUTHENTICATION
	ErrorCode_NOT_FOUND
	ErrorCode_API
	ErrorCode_FILE_WRITE
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:        "UNKNOWN",
	ErrorCode_CONFIGURATION:  "CONFIGURATION",
	ErrorCode_INVALID_INPUT:  "INVALID_INPUT",
	ErrorCode_NETWORK:        "NETWORK",
	ErrorCode_AUTHENTICATION: "AUTHENTICATION",
	ErrorCode_NOT_FOUND:      "NOT_FOUND",
	ErrorCode_API:            "API",
	ErrorCode_FILE_WRITE:     "FILE_WRITE",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// AppError is the custom error type for the application
type AppError struct {
	Raw     error
	Code    ErrorCode
	Message string
	Details map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the ErrorCode carried by err, or ErrorCode_UNKNOWN
// when err is not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrorCode_UNKNOWN
}

// Configuration Errors
func ErrConfiguration(err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_CONFIGURATION,
		Message: "Invalid configuration",
	}
}

func ErrMissingConfig(key string) AppError {
	return AppError{
		Code:    ErrorCode_CONFIGURATION,
		Message: fmt.Sprintf("%s is required", key),
	}
}

// Input Errors
func ErrInvalidInput(message string) AppError {
	return AppError{
		Code:    ErrorCode_INVALID_INPUT,
		Message: message,
	}
}

func ErrInvalidTranscriptRef(ref string) AppError {
	return AppError{
		Code:    ErrorCode_INVALID_INPUT,
		Message: "Invalid transcript reference",
	}.WithDetail("ref", ref)
}

// API Errors
func ErrNetwork(err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_NETWORK,
		Message: "Network request failed",
	}
}

func ErrAuthentication() AppError {
	return AppError{
		Code:    ErrorCode_AUTHENTICATION,
		Message: "Fireflies rejected the API key",
	}
}

func ErrTranscriptNotFound(id string) AppError {
	return AppError{
		Code:    ErrorCode_NOT_FOUND,
		Message: "Transcript not found",
	}.WithDetail("transcript_id", id)
}

func ErrAPI(err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_API,
		Message: "Fireflies API request failed",
	}
}

// File Errors
func ErrFileWrite(path string, err error) AppError {
	return AppError{
		Raw:     err,
		Code:    ErrorCode_FILE_WRITE,
		Message: "Failed to write output file",
	}.WithDetail("path", path)
}
