package apperror

import (
	"reflect"
	"strings"

	"go-shiftplan/internal/shared/clock"
	"go-shiftplan/internal/shared/weekday"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func Init() {
	// Register custom behaviour on gin's built-in validator
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations installs the json tag name func plus the "hhmm" and
// "weekday" tags on v.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Use the json tag name (e.g. `json:"opening_time"`)
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := clock.Parse(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, err := weekday.Parse(fl.Field().String())
		return err == nil
	})
}
