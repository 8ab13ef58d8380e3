// Package validation implements the declarative field-rule checker used
// by every write endpoint.  Handlers declare a Rules map per payload and
// receive a field -> messages map back; an empty map means the payload
// is valid.  The individual checks delegate to go-playground/validator
// so the email grammar and length semantics match the rest of the
// ecosystem.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the process-wide validator instance.  It caches parsed
// tags, so sharing one is both safe and cheaper than constructing one
// per request.
var validate = validator.New()

// Rule is a single validation token.  Rules are independent and
// cumulative: a field may collect one message per failing rule.
type Rule struct {
	name string
	min  int
}

// Required fails when the value is absent or an empty string.  Zero and
// false are considered present values.
func Required() Rule { return Rule{name: "required"} }

// Email fails when a present, non-empty value is not a valid email
// address.  It does not imply Required.
func Email() Rule { return Rule{name: "email"} }

// Min fails when the value's string form is shorter than n characters.
// Absent values are skipped, so Min does not imply Required either.
func Min(n int) Rule { return Rule{name: "min", min: n} }

// Rules maps a field name to its ordered rule list.
type Rules map[string][]Rule

// Validate checks data against rules and returns the violation messages
// grouped by field.  No type coercion happens beyond rendering values
// to their string form for the length and email checks.
func Validate(data map[string]any, rules Rules) map[string][]string {
	errs := map[string][]string{}

	for field, fieldRules := range rules {
		value, present := data[field]
		if value == nil {
			present = false
		}

		for _, rule := range fieldRules {
			switch rule.name {
			case "required":
				if !present || value == "" {
					errs[field] = append(errs[field], "This field is required.")
				}
			case "email":
				if present && value != "" {
					if validate.Var(stringify(value), "email") != nil {
						errs[field] = append(errs[field], "Invalid email address.")
					}
				}
			case "min":
				if present {
					if validate.Var(stringify(value), fmt.Sprintf("min=%d", rule.min)) != nil {
						errs[field] = append(errs[field], fmt.Sprintf("Must be at least %d characters.", rule.min))
					}
				}
			}
		}
	}

	return errs
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	// JSON numbers decode as float64; trim the trailing ".0" style noise
	// so min-length checks see the digits a client actually sent.
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", value)
}
