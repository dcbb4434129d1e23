package utils

import (
	"medscreen-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("assessment_type", validateAssessmentType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAssessmentType(fl validator.FieldLevel) bool {
	value := constvars.AssessmentType(fl.Field().String())
	for _, known := range constvars.KnownAssessments {
		if value == known {
			return true
		}
	}
	return false
}
