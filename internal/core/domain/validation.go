package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the registry's custom tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("biketype", func(fl validator.FieldLevel) bool {
		return BikeType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("bikeyear", func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		return year >= MinBikeYear && year <= MaxBikeYear(time.Now())
	})
	return v
}

// ValidationIssues turns validator output into a *ValidationError. Other
// errors are returned as they are.
func ValidationIssues(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Add(fe.Field(), issueMessage(fe))
	}
	return out
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "biketype":
		return "unknown bike type"
	case "bikeyear":
		return fmt.Sprintf("must be between %d and %d", MinBikeYear, MaxBikeYear(time.Now()))
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
