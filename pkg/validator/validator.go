package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Enum is implemented by the closed status types; Valid reports
// whether the value is inside the declared set.
type Enum interface {
	Valid() bool
}

// RegisterEnums installs the "enum" binding tag on gin's validator
// engine so that request structs can declare closed status fields.
func RegisterEnums() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		if e, ok := fl.Field().Interface().(Enum); ok {
			return e.Valid()
		}
		return false
	})
}
