package validators

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Document ids of the form __name__ are reserved by the store.
var reservedIDPattern = regexp.MustCompile(`^__.*__$`)

const (
	maxDocumentIDBytes = 1500
	maxFareAmount      = 1e6
)

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("document_id", validateDocumentID)
	validate.RegisterValidation("fare_amount", validateFareAmount)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return ValidationErrors{{Message: err.Error()}}
		}
		for _, err := range fieldErrors {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

// IsValidDocumentID reports whether id can address a stored document.
func IsValidDocumentID(id string) bool {
	return validate.Var(id, "required,document_id") == nil
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "document_id":
		return "Invalid document ID"
	case "fare_amount":
		return "Invalid fare amount"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validateDocumentID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id == "" {
		return true // Let required tag handle empty values
	}
	if len(id) > maxDocumentIDBytes || strings.Contains(id, "/") {
		return false
	}
	if id == "." || id == ".." {
		return false
	}
	return !reservedIDPattern.MatchString(id)
}

func validateFareAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()
	return amount > 0 && amount <= maxFareAmount && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}
