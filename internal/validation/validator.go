// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed validate tag on one request field.
type FieldError struct {
	// Field is the dataset (json) name of the field.
	Field string
	// Tag is the validate tag that failed, e.g. "lte".
	Tag string
	// Param is the tag argument, e.g. "5" for lte=5.
	Param   string
	Message string
}

func (e FieldError) Error() string { return e.Message }

// RequestValidationError collects every field that failed on one request.
type RequestValidationError struct {
	errors []FieldError
}

// Errors returns the failures in struct field order.
func (ve *RequestValidationError) Errors() []FieldError {
	return ve.errors
}

// Fields returns the dataset names of the failing fields.
func (ve *RequestValidationError) Fields() []string {
	fields := make([]string, len(ve.errors))
	for i := range ve.errors {
		fields[i] = ve.errors[i].Field
	}
	return fields
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.errors))
	for i := range ve.errors {
		messages[i] = ve.errors[i].Message
	}
	return strings.Join(messages, "; ")
}

// GetValidator returns the shared validator, building it on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		// "required" lets "   " through; usernames and titles must not be blank.
		if err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		}); err != nil {
			panic(fmt.Sprintf("register notblank validator: %v", err))
		}
	})
	return validate
}

// ValidateStruct checks a request's validate tags. It returns nil when the
// request is well formed.
//
//	if verr := validation.ValidateStruct(req); verr != nil {
//	    return fmt.Errorf("%w: %s", models.ErrInvalidInput, verr)
//	}
func ValidateStruct(s any) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct or pointer to one.
		return &RequestValidationError{errors: []FieldError{{Field: "request", Tag: "struct", Message: err.Error()}}}
	}

	out := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		}
	}
	return &RequestValidationError{errors: out}
}

func message(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
