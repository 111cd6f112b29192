package fattura

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDocument is matched by every error returned from Validate.
var ErrInvalidDocument = errors.New("invalid fiscal document")

// FieldError describes one rejected document field.
type FieldError struct {
	Field   string      `json:"field"` // JSON path, e.g. "recipient.name"
	Rule    string      `json:"rule"`  // failed rule, e.g. "required"
	Value   interface{} `json:"value,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error for field '%s': failed '%s' (value: %v)", e.Field, e.Rule, e.Value)
}

// ValidationError collects all field errors found in one document.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// Is implements error matching for errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidDocument
}
