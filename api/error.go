package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInternalServer     = errors.New("internal server error")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrUnknownVariation   = errors.New("unknown product variation")
	ErrEmptyCheckoutItems = errors.New("checkout requires at least one item")
)

type FailedValidationResponse struct {
	Message         string            `json:"message"`
	FieldViolations []*FieldViolation `json:"field_violations"`
}

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

func failedValidationError(violations []*FieldViolation) *FailedValidationResponse {
	return &FailedValidationResponse{
		Message:         "Invalid request parameters",
		FieldViolations: violations,
	}
}
