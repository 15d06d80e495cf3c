// Package apierror provides RFC 9457 Problem Details error response types
// for consistent API error handling across the hugmood backend.
package apierror

// ProblemDetails represents an RFC 9457 Problem Details response.
// See https://www.rfc-editor.org/rfc/rfc9457.html
type ProblemDetails struct {
	// RFC 9457 standard fields
	Type   string `json:"type"`             // URI reference identifying the problem type
	Title  string `json:"title"`            // Short human-readable summary
	Status int    `json:"status"`           // HTTP status code
	Detail string `json:"detail,omitempty"` // Explanation specific to this occurrence

	// Extension fields for the hugmood API
	RequestID   string       `json:"request_id,omitempty"`   // Correlation ID
	UserMessage string       `json:"user_message,omitempty"` // UI-safe message for client display
	RetryAfter  *int         `json:"retry_after,omitempty"`  // Seconds until retry allowed (429)
	Errors      []FieldError `json:"errors,omitempty"`       // Per-field validation errors
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error implements the error interface for ProblemDetails.
func (p *ProblemDetails) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}
