// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-micropost/models"
)

// Custom tags registered on top of the go-playground built-ins.
const (
	tagNotBlank    = "notblank"
	tagEmailFormat = "email_format"
)

// emailPattern accepts addresses such as "user@example.com" and
// "first.last+tag@foo.co.jp"; it is matched case-insensitively.
var emailPattern = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-.]+\.[a-z]+$`)

// ModelValidator validates the input structs of the models package using
// their `validate` struct tags.
type ModelValidator struct {
	validate *validator.Validate
}

// NewModelValidator constructs a [ModelValidator] and returns it as the
// [Validator] interface.
func NewModelValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields under their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// both registrations only fail on an empty tag or nil func
	_ = v.RegisterValidation(tagNotBlank, notBlank)
	_ = v.RegisterValidation(tagEmailFormat, emailFormat)

	return &ModelValidator{validate: v}
}

// Validate checks obj against its tags. Supported types are
// [models.UserRegistration], [models.UserUpdate] and [models.NewMicropost],
// by value or pointer. When fields (Go struct field
// names) are given only those fields are checked.
//
// A [models.UserUpdate] that carries no new password skips the password
// rules.
func (v *ModelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error

	switch value := obj.(type) {
	case models.UserRegistration, *models.UserRegistration,
		models.NewMicropost, *models.NewMicropost:
		err = v.validateStruct(ctx, value, fields)
	case models.UserUpdate:
		err = v.validateUserUpdate(ctx, value, fields)
	case *models.UserUpdate:
		if value == nil {
			return ErrUnsupportedType
		}
		err = v.validateUserUpdate(ctx, *value, fields)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	return translate(err)
}

func (v *ModelValidator) validateStruct(ctx context.Context, obj any, fields []string) error {
	if len(fields) > 0 {
		return v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	return v.validate.StructCtx(ctx, obj)
}

func (v *ModelValidator) validateUserUpdate(ctx context.Context, update models.UserUpdate, fields []string) error {
	if len(fields) > 0 {
		return v.validate.StructPartialCtx(ctx, update, fields...)
	}
	if !update.ChangesPassword() {
		return v.validate.StructExceptCtx(ctx, update, "Password", "PasswordConfirmation")
	}
	return v.validate.StructCtx(ctx, update)
}

// translate converts go-playground errors into [ValidationErrors].
func translate(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case tagNotBlank, "required":
		return "can't be blank"
	case tagEmailFormat:
		return "is invalid"
	case "max":
		return fmt.Sprintf("is too long (maximum is %s characters)", fe.Param())
	case "min":
		return fmt.Sprintf("is too short (minimum is %s characters)", fe.Param())
	case "eqfield":
		return "doesn't match password"
	default:
		return "is invalid"
	}
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

func emailFormat(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}
