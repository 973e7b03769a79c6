package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the process-wide validator. validator.Validate caches
// struct metadata and is safe for concurrent use.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	if err := Validator().Struct(v); err != nil {
		return errors.Wrap(err, "validation failed")
	}
	return nil
}

// FieldErrors lists the failing fields of an error returned by Struct, in
// "Namespace:tag" form.
func FieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Namespace()+":"+fe.Tag())
	}
	return out
}
