package validation

import (
	"errors"
	"reflect"
	"strings"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adds the salon's custom rules and reports fields by their json/form name.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(key), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return booking.ValidatePhone(fl.Field().String()) == nil
	})
}

// RegisterGinBinding installs the rules on gin's default binding engine.
func RegisterGinBinding() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

// FormatErrors maps each failing field to a readable message. It returns nil
// for errors that did not come from the validator.
func FormatErrors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	out := make(map[string]string, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch baseTag(e.Tag()) {
		case "required":
			out[field] = field + " is required"
		case "max":
			out[field] = field + " must be at most " + e.Param() + " characters"
		case "oneof":
			out[field] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
		case "datetime":
			out[field] = field + " must match the layout " + e.Param()
		case "phone":
			out[field] = field + " must be a valid phone number"
		case "startswith":
			out[field] = field + " must start with " + e.Param()
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}

// baseTag reduces an OR'd tag such as "eq=|phone" to its last rule, the one
// whose parameter the validator reports.
func baseTag(tag string) string {
	if i := strings.LastIndex(tag, "|"); i >= 0 {
		tag, _, _ = strings.Cut(tag[i+1:], "=")
	}
	return tag
}
