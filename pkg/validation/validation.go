// Package validation wires custom rules into gin's validator and turns
// validator failures into field-level messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	registerOnce sync.Once
	registerErr  error
)

// FieldError is one failed rule on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Register installs the custom rules on gin's default validator. Safe to call repeatedly.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		registerErr = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	})
	return registerErr
}

// FieldErrors converts a binding error into field messages. ok is false when
// err did not come from the validator (malformed JSON, wrong types).
func FieldErrors(err error) (fields []FieldError, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fields = make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return fields, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	case "url":
		return "Invalid URL format"
	case "uuid", "uuid4":
		return fmt.Sprintf("Invalid %s format", fe.Field())
	case "phone":
		return "Phone number must be exactly 10 digits"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
