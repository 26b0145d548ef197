package assessment

import (
	"fmt"
	"strings"
)

const (
	CodeMissingFields = "Missing required fields"
	CodeInvalidAge    = "Invalid age value"
)

// ValidationError is a rejected input. It maps to HTTP 400.
type ValidationError struct {
	Code          string
	Field         string
	MissingFields []string
	Message       string
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.MissingFields, ", "))
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

func missingFields(fields []string) *ValidationError {
	return &ValidationError{
		Code:          CodeMissingFields,
		MissingFields: fields,
		Message:       "Required fields: " + strings.Join(fields, ", "),
	}
}

func invalidField(field, message string) *ValidationError {
	code := fmt.Sprintf("Invalid %s value", field)
	return &ValidationError{Code: code, Field: field, Message: message}
}

// InternalError wraps a failure recovered while scoring. It maps to HTTP 500.
type InternalError struct {
	Cause any
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("assessment failed: %v", e.Cause)
}
