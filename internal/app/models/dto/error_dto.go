package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the standard error body. Errors carries per-field
// validation messages and is omitted for non-validation failures.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewErrorResponse builds an error body with just a message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// NewValidationErrorResponse maps binding failures to a field->message body.
// Non-validator errors (malformed JSON, wrong types) get a single generic
// message.
func NewValidationErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Message: "Validation failed"}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		resp.Message = "Invalid request body"
		return resp
	}

	resp.Errors = make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		resp.Errors[fe.Field()] = validationMessage(fe)
	}
	return resp
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("Failed validation on '%s'", fe.Tag())
	}
}
