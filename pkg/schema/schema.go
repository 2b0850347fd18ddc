// Package schema evaluates declarative per-operation field constraints against
// a decoded JSON object. Fields are checked in declaration order and the first
// violation wins; format rules run on the shared validator instance.
package schema

import (
	"time"

	"github.com/go-playground/validator/v10"

	"employee-directory/pkg/customvalidator"
	apperrors "employee-directory/pkg/errors"
)

type Kind int

const (
	String Kind = iota
	Number
	Date
)

// Field describes one constraint of a schema. Rules is a validator/v10 tag
// (e.g. "email", "us_phone") applied after presence and kind checks;
// RuleMessage is the violation message it produces.
type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Required    bool
	Rules       string
	RuleMessage string
}

type Schema struct {
	Name   string
	Fields []Field
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := customvalidator.RegisterCustomValidations(validate); err != nil {
		panic(err)
	}
}

// Validate checks data against the schema and returns a ValidationError for
// the first violation, in field declaration order. Fields not declared in the
// schema pass through untouched.
func (s Schema) Validate(data map[string]any) error {
	for _, f := range s.Fields {
		value, present := data[f.Name]
		if !present || value == nil {
			if f.Required {
				return violation(f.Label + " is required")
			}
			continue
		}

		switch f.Kind {
		case String:
			str, ok := value.(string)
			if !ok {
				return violation(f.Label + " must be a string")
			}
			if str == "" {
				return violation(f.Label + " cannot be empty")
			}
			if f.Rules != "" {
				if err := validate.Var(str, f.Rules); err != nil {
					return violation(f.RuleMessage)
				}
			}
		case Number:
			if !isNumber(value) {
				return violation(f.Label + " must be a number")
			}
		case Date:
			if !isDate(value) {
				return violation(f.Label + " must be a valid date")
			}
		}
	}

	return nil
}

func violation(detail string) error {
	return apperrors.NewValidationError("Validation error: %s", detail)
}

func isNumber(value any) bool {
	switch value.(type) {
	case float64, float32, int, int64, uint64:
		return true
	}
	return false
}

func isDate(value any) bool {
	switch v := value.(type) {
	case time.Time:
		return true
	case string:
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			return true
		}
		_, err := time.Parse("2006-01-02", v)
		return err == nil
	}
	return false
}
