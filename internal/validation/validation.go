package validation

import "strings"

// FieldError is a single human-readable rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects every violation found in a candidate. An empty slice means
// the candidate is valid.
type Errors []FieldError

func (e Errors) Error() string {
	messages := make([]string, len(e))
	for i, fieldError := range e {
		messages[i] = fieldError.Message
	}
	return strings.Join(messages, ", ")
}
