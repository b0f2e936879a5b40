// Package apierror defines the JSON error payloads of the Markfy API.
// Every error response carries an error message; validation failures add a
// details array of field-level issues.
package apierror

// FieldError is one field-level validation issue.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the body of every non-2xx API response.
type Response struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// New builds a plain error payload.
func New(message string) *Response {
	return &Response{Error: message}
}

// NewValidation builds a validation error payload with field details.
func NewValidation(message string, details []FieldError) *Response {
	return &Response{Error: message, Details: details}
}
