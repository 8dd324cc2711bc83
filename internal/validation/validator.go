// Package validation checks input DTOs and uploaded images before they reach the domain.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxImageBytes is the largest accepted product image.
	MaxImageBytes int64 = 1024 * 1024

	imageContentTypePrefix = "image/"
)

// MessageProvider lets an input type override failure messages.
// Keys are "<field>.<tag>" using the field's json name, e.g. "rating.min".
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// Validator wraps go-playground/validator with storefront rules and messages.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom word count rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	_ = v.RegisterValidation("minwords", func(fl validator.FieldLevel) bool {
		return wordCount(fl.Field().String()) >= int(asInt(fl.Param()))
	})
	_ = v.RegisterValidation("maxwords", func(fl validator.FieldLevel) bool {
		return wordCount(fl.Field().String()) <= int(asInt(fl.Param()))
	})

	return &Validator{validate: v}
}

// Struct validates s and returns a VALIDATION_FAILED error whose message joins
// every failure in field order.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.NewValidationError(err.Error())
	}

	var overrides map[string]string
	if mp, ok := s.(MessageProvider); ok {
		overrides = mp.ValidationMessages()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := overrides[fe.Field()+"."+fe.Tag()]; ok {
			messages = append(messages, msg)

			continue
		}
		messages = append(messages, defaultMessage(fe))
	}

	return domainerrors.NewValidationError(messages...)
}

// Validate satisfies echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

// ValidateImage checks an uploaded image's size and declared content type.
func ValidateImage(size int64, contentType string, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = MaxImageBytes
	}

	var messages []string
	if size <= 0 {
		return domainerrors.NewValidationError("expected a file")
	}
	if size > maxBytes {
		messages = append(messages, fmt.Sprintf("file size must be less than %s", humanBytes(maxBytes)))
	}
	if !strings.HasPrefix(contentType, imageContentTypePrefix) {
		messages = append(messages, "file must be an image")
	}

	if len(messages) > 0 {
		return domainerrors.NewValidationError(messages...)
	}

	return nil
}

func defaultMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid identifier", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "minwords":
		return fmt.Sprintf("%s must have at least %s words", field, fe.Param())
	case "maxwords":
		return fmt.Sprintf("%s must have at most %s words", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func asInt(param string) int64 {
	var n int64
	_, _ = fmt.Sscan(param, &n)

	return n
}

func humanBytes(n int64) string {
	const mib = 1024 * 1024
	if n%mib == 0 {
		return fmt.Sprintf("%dMB", n/mib)
	}

	return fmt.Sprintf("%d bytes", n)
}
