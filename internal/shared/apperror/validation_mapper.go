package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// 1. Replace underscores with spaces (opening_time -> opening time)
	s = strings.ReplaceAll(s, "_", " ")

	// 2. Title case (opening time -> Opening Time)
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a binding error into an AppError describing the
// first failing field.
func MapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]

		// Field() is already the json name thanks to RegisterTagNameFunc
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return Wrap(
		err,
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
