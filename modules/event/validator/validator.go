package validator

import (
	"strings"

	"event-admin-api/modules/event/dto"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Errors []ValidationError `json:"errors"`
}

func (r *ValidationResult) HasError() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) addRequired(field string, value string) {
	if strings.TrimSpace(value) == "" {
		r.Errors = append(r.Errors, ValidationError{Field: field, Message: field + " is required"})
	}
}

// Required-field presence only; anything richer belongs to the form.
func ValidateCreateEventRequest(req *dto.CreateEventRequest) *ValidationResult {
	result := &ValidationResult{}
	result.addRequired("name", req.Name)
	result.addRequired("location", req.Location)
	result.addRequired("date", req.Date)
	return result
}

func ValidateUpdateEventRequest(req *dto.UpdateEventRequest) *ValidationResult {
	result := &ValidationResult{}
	result.addRequired("name", req.Name)
	result.addRequired("location", req.Location)
	result.addRequired("date", req.Date)
	return result
}
