// Package validation turns a decoded ContactInput into an explicit Result
// using go-playground/validator.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/contacts-api/internal/types"
)

// emailTag names the custom format rule registered by New.
const emailTag = "contact_email"

// emailPattern: no whitespace, exactly one "@", and a "." somewhere after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator checks contact input. It is safe for concurrent use.
type Validator struct {
	v          *validator.Validate
	checkEmail bool
}

// New returns a Validator. When checkEmail is false only the required
// field rule applies.
func New(checkEmail bool) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name ("firstName") rather than the Go name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation(emailTag, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return &Validator{v: v, checkEmail: checkEmail}
}

// Result is the outcome of validating one ContactInput.
type Result struct {
	// Input holds the trimmed values; only meaningful when OK is true.
	Input types.ContactInput

	// Missing lists the JSON names of absent or blank fields, in
	// declaration order.
	Missing []string

	// InvalidEmail is set when every field is present but the email
	// fails the format rule.
	InvalidEmail bool
}

// OK reports whether the input can be stored.
func (r Result) OK() bool {
	return len(r.Missing) == 0 && !r.InvalidEmail
}

// Contact trims in and checks it. Missing fields are reported before
// the email format, so a blank email is missing rather than invalid.
func (val *Validator) Contact(in types.ContactInput) Result {
	res := Result{Input: in.Trimmed()}

	if err := val.v.Struct(res.Input); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			// InvalidValidationError only happens for non-struct input.
			panic(err)
		}
		for _, fe := range fieldErrs {
			res.Missing = append(res.Missing, fe.Field())
		}
		return res
	}

	if val.checkEmail && val.v.Var(res.Input.Email, emailTag) != nil {
		res.InvalidEmail = true
	}
	return res
}
