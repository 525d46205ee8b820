package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Domain-specific errors
	ErrIngredientNotFound = "INGREDIENT_NOT_FOUND"
	ErrOrderNotFound      = "ORDER_NOT_FOUND"
	ErrOrderPersistence   = "ORDER_PERSISTENCE_FAILED"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// BannerMessage is the single aggregate message returned alongside field
// errors whenever any validation rule fails.
const BannerMessage = "Please correct the problems below and resubmit."

// FieldError is one violated rule, scoped to the field that violated it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult collects every violation found in a single validation pass.
// Validators never short-circuit: the UI surfaces all errors at once.
type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

// Valid reports whether no rule was violated.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Add records one field-scoped violation.
func (r *ValidationResult) Add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// ErrorsFor returns the messages recorded against a single field.
func (r ValidationResult) ErrorsFor(field string) []string {
	var msgs []string
	for _, e := range r.Errors {
		if e.Field == field {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// ValidationErrorResponse is the HTTP body for a failed validation: the banner
// plus one entry per violated field rule.
type ValidationErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// NewValidationErrorResponse wraps a failed ValidationResult for the wire.
func NewValidationErrorResponse(result ValidationResult) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    ErrValidationFailed,
		Message: BannerMessage,
		Errors:  result.Errors,
	}
}
