package validator

import (
	"strings"

	"event-admin-api/modules/task/dto"
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

func ValidateCreateTaskRequest(req *dto.CreateTaskRequest) *ValidationResult {
	result := &ValidationResult{}
	result.addRequired("name", req.Name)
	result.addRequired("deadline", req.Deadline)
	result.addRequired("event_id", req.EventID)
	return result
}
