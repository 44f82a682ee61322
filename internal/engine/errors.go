package engine

import (
	"errors"
	"fmt"
)

// RequestError represents a problem detected while parsing filter
// parameters or assembling the query.
//
// Request errors include:
//   - Invalid operator selector: fo_ value is not an integer, or is out
//     of range for the field's operator list
//   - Malformed filter parameters: selector and value lists for one
//     field have different lengths
//   - Value coercion: fv_ value cannot be interpreted as the field's type
//
// Every error names the offending field and parameter so a UI layer can
// highlight the input. Any request error aborts the whole request; the
// engine never returns a partially filtered query.
type RequestError struct {
	// Code identifies the error category.
	Code RequestErrorCode

	// Field is the schema field the parameter addressed ("Model.field").
	Field string

	// Param is the wire parameter name that carried the bad input.
	Param string

	// Message is a human-readable description.
	Message string
}

// RequestErrorCode categorizes request errors.
type RequestErrorCode string

const (
	// ErrCodeInvalidOperatorSelector indicates a non-integer or
	// out-of-range fo_ value.
	ErrCodeInvalidOperatorSelector RequestErrorCode = "INVALID_OPERATOR_SELECTOR"

	// ErrCodeMalformedFilterParameters indicates mismatched selector and
	// value list lengths for one field.
	ErrCodeMalformedFilterParameters RequestErrorCode = "MALFORMED_FILTER_PARAMETERS"

	// ErrCodeValueCoercion indicates a value that cannot be interpreted
	// as the field's declared type.
	ErrCodeValueCoercion RequestErrorCode = "VALUE_COERCION"
)

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: %s (field=%s, param=%s)", e.Code, e.Message, e.Field, e.Param)
	}
	return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
}

// IsInvalidOperatorSelector returns true for invalid-selector errors.
// Uses errors.As to handle wrapped errors.
func IsInvalidOperatorSelector(err error) bool {
	return hasCode(err, ErrCodeInvalidOperatorSelector)
}

// IsMalformedFilterParameters returns true for mismatched-list errors.
func IsMalformedFilterParameters(err error) bool {
	return hasCode(err, ErrCodeMalformedFilterParameters)
}

// IsValueCoercion returns true for value coercion errors.
func IsValueCoercion(err error) bool {
	return hasCode(err, ErrCodeValueCoercion)
}

func hasCode(err error, code RequestErrorCode) bool {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Code == code
	}
	return false
}

func newSelectorError(field, param, raw string, listLen int) *RequestError {
	return &RequestError{
		Code:    ErrCodeInvalidOperatorSelector,
		Field:   field,
		Param:   param,
		Message: fmt.Sprintf("selector %q is not a valid index (operator list has %d entries)", raw, listLen),
	}
}

func newMismatchError(field, selectorParam string, selectors, values int) *RequestError {
	return &RequestError{
		Code:    ErrCodeMalformedFilterParameters,
		Field:   field,
		Param:   selectorParam,
		Message: fmt.Sprintf("%d selector values but %d filter values", selectors, values),
	}
}

func newCoercionError(field, param, raw string, cause error) *RequestError {
	return &RequestError{
		Code:    ErrCodeValueCoercion,
		Field:   field,
		Param:   param,
		Message: fmt.Sprintf("cannot interpret %q: %v", raw, cause),
	}
}
