package validator

import (
	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds domain-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	// "usertype" accepts the two account kinds the platform knows about.
	if err := v.RegisterValidation("usertype", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "Worker" || value == "Employer"
	}); err != nil {
		return err
	}

	return nil
}
