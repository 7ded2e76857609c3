// Package validation wraps go-playground/validator with English translations
// and JSON field names, so request DTOs can be checked in one call.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"institute-insights-service/internal/platform/clock"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "{0} must be a weekday name (Monday ... Sunday)"

	clockTimeTag  = "clocktime"
	clockTimeText = "{0} must be a time formatted as HH:MM or HH:MM:SS"

	requiredTag  = "required"
	requiredText = "{0} is required"

	weekdays = map[string]bool{
		"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
		"friday": true, "saturday": true, "sunday": true,
	}
)

// FieldError is a validation problem on a single request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is returned by Validator.Struct when at least one field is invalid.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() *Validator {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(weekdayTag, func(fl validator.FieldLevel) bool {
		return weekdays[strings.ToLower(strings.TrimSpace(fl.Field().String()))]
	})
	_ = validate.RegisterValidation(clockTimeTag, func(fl validator.FieldLevel) bool {
		_, err := clock.Parse(fl.Field().String())
		return err == nil
	})

	registerTranslation(validate, translator, weekdayTag, weekdayText, false)
	registerTranslation(validate, translator, clockTimeTag, clockTimeText, false)
	registerTranslation(validate, translator, requiredTag, requiredText, true)

	return &Validator{validate: validate, translator: translator}
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override bool) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fieldPath(fe))
			return s
		},
	)
}

// Struct validates s and returns Errors when a field rule fails.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Message: fe.Translate(v.translator),
		})
	}
	return out
}

// fieldPath drops the top-level struct name: "Req.slots[0].start_time" -> "slots[0].start_time".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
