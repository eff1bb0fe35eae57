package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the custom rules registered.
//
// Custom tags:
//
//	notblank  string is non-empty after trimming whitespace
//	nonempty  string is non-empty; whitespace-only passes
//	valid     the field's Valid() method reports true
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("nonempty", nonEmpty)
		_ = v.RegisterValidation("valid", validEnum)
		instance = v
	})
	return instance
}

// Struct validates s against its `validate` tags
func Struct(s interface{}) error {
	return Validator().Struct(s)
}

// FirstInvalidField returns the name of the first failing struct field, or "".
func FirstInvalidField(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return ""
	}
	return errs[0].Field()
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func nonEmpty(fl validator.FieldLevel) bool {
	return fl.Field().Len() > 0
}

// enum is implemented by closed string sets such as lead statuses
type enum interface {
	Valid() bool
}

func validEnum(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(enum)
	return ok && e.Valid()
}
