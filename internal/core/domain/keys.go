package domain

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func keyValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// AssertKeysPresent checks that every field of obj named in keys is set.
// When any are missing, onMissing is called once with their names, taken from
// the json tag when present. It never returns an error and never panics on a
// non-struct obj: every key is reported missing instead.
func AssertKeysPresent(obj any, keys []string, onMissing func(missing []string)) {
	if len(keys) == 0 {
		return
	}

	err := keyValidator().StructPartial(obj, keys...)
	if err == nil {
		return
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		onMissing(append([]string(nil), keys...))
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		onMissing(append([]string(nil), keys...))
		return
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	onMissing(missing)
}
