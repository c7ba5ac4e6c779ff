package domain

import (
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/domain/calendar"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"reflect"
	"strings"
)

var validate = NewValidator()

// NewValidator returns a validator that understands calendar.Day and reports
// fields by their json names. "notblank" rejects whitespace-only strings.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(calendar.Day); ok && !d.IsZero() {
			return d.String()
		}
		return ""
	}, calendar.Day{})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (f FieldError) String() string {
	if f.Param != "" {
		return fmt.Sprintf("%s: must satisfy %s=%s", f.Field, f.Rule, f.Param)
	}
	return fmt.Sprintf("%s: must satisfy %s", f.Field, f.Rule)
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validate checks v against its validate tags and returns a *ValidationError
// describing every violated rule.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return errors.Join(ErrValidation, err)
	}

	verr := &ValidationError{Fields: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		verr.Fields = append(verr.Fields, FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return verr
}

// Invalid builds a ValidationError for a rule checked outside of struct tags.
func Invalid(field, rule, param string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule, Param: param}}}
}

// fieldPath drops the root struct name from a validator namespace,
// "Input.daily_goals.steps" becomes "daily_goals.steps".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
