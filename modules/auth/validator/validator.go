package validator

import (
	"strings"

	"event-admin-api/modules/auth/dto"
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

func ValidateRegisterRequest(req *dto.RegisterRequest) *ValidationResult {
	result := &ValidationResult{}
	result.addRequired("email", req.Email)
	result.addRequired("password", req.Password)
	return result
}

func ValidateLoginRequest(req *dto.LoginRequest) *ValidationResult {
	result := &ValidationResult{}
	result.addRequired("email", req.Email)
	result.addRequired("password", req.Password)
	return result
}
