// Package validate wraps go-playground/validator with the custom rules used
// by the request DTOs.
package validate

import (
	"fmt"
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var phonePattern = regexp.MustCompile(`^[+]?[0-9]{10,20}$`)

func init() {
	// price: positive decimal, at most 8 integer digits and 2 fraction digits.
	validate.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		if v <= 0 || v >= 1e8 {
			return false
		}
		cents := v * 100
		return math.Abs(cents-math.Round(cents)) < 1e-6
	})

	// phone: optional leading '+', then 10-20 digits.
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

// Struct validates v against its struct tags and returns one message per
// failed field, or nil when v is valid.
func Struct(v interface{}) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		detail := fmt.Sprintf("%s: failed on '%s'", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			detail = fmt.Sprintf("%s: failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param())
		}
		details = append(details, detail)
	}
	return details
}
