package session

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	notBlankTag = "notblank"
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report form field names rather than Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && strings.TrimSpace(s) != ""
	})
	_ = validate.RegisterTranslation(notBlankTag, translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			return fe.Field() + " cannot be blank"
		})
}

// FieldError is one rejected form field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports every rejected field of a form.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func (err *ValidationError) Error() string {
	if len(err.Fields) == 0 {
		return err.Err.Error()
	}
	msgs := make([]string, 0, len(err.Fields))
	for _, f := range err.Fields {
		msgs = append(msgs, f.Error)
	}
	return err.Err.Error() + ": " + strings.Join(msgs, "; ")
}

func (err *ValidationError) Unwrap() error { return err.Err }

// Field returns the message for the named field, or "".
func (err *ValidationError) Field(name string) string {
	for _, f := range err.Fields {
		if f.Field == name {
			return f.Error
		}
	}
	return ""
}

var errInvalidForm = errors.New("invalid form")

func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{Err: errInvalidForm}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Error: fe.Translate(translator)})
	}
	return ve
}
