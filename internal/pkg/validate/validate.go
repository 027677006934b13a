package validate

import (
	"github.com/go-playground/validator/v10"
)

var instance = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a DTO against its validate tags.
func Struct(s any) error {
	return instance.Struct(s)
}
