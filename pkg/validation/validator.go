package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

const (
	tagPresent    = "present"
	tagString     = "string"
	tagNoNUL      = "nonul"
	tagRequired   = "required"
	tagMax        = "max"
	tagWebsiteURL = "websiteurl"
)

var reWebsiteURL = regexp.MustCompile(`^https://([a-zA-Z0-9_-]+\.)+[a-zA-Z0-9_-]+(/[a-zA-Z0-9_-]+)*/?$`)

var ErrTranslatorNotFound = errors.New("translator not found")

// Validator checks request models made of Field values against their
// `validate` tags and reports every violation as a FieldError.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() (*Validator, error) {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(sf reflect.StructField) string {
		return fieldName(sf)
	})
	validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		if f, ok := v.Interface().(Field); ok {
			return f.Value
		}
		return nil
	}, Field{})

	if err := validate.RegisterValidation(tagWebsiteURL, func(fl validator.FieldLevel) bool {
		return reWebsiteURL.MatchString(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := registerMessages(validate, enTrans); err != nil {
		return nil, err
	}

	return &Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate returns Errors when data violates its schema, nil when it is
// valid, and any other error when data cannot be validated at all.
//
// Errors are reported in struct field order. Presence and type checks on a
// Field come before its tag rules, a NUL character in the value is reported
// after them, and only the first error per field is kept.
func (v *Validator) Validate(data interface{}) error {
	rv := reflect.Indirect(reflect.ValueOf(data))
	if rv.Kind() != reflect.Struct {
		return errors.New("validation: expected a struct, got " + rv.Kind().String())
	}

	ruleErrs := make(map[string][]string)
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}
		for _, fe := range validateErrs {
			ruleErrs[fe.Field()] = append(ruleErrs[fe.Field()], fe.Translate(v.translator))
		}
	}

	var errs Errors
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := fieldName(sf)
		if name == "" {
			continue
		}

		if f, ok := rv.Field(i).Interface().(Field); ok {
			switch {
			case !f.Present:
				errs = append(errs, FieldError{Message: v.message(tagPresent, name), Field: name})
			case !f.IsString:
				errs = append(errs, FieldError{Message: v.message(tagString, name), Field: name})
			}
		}

		for _, msg := range ruleErrs[name] {
			errs = append(errs, FieldError{Message: msg, Field: name})
		}

		if f, ok := rv.Field(i).Interface().(Field); ok && strings.ContainsRune(f.Value, 0) {
			errs = append(errs, FieldError{Message: v.message(tagNoNUL, name), Field: name})
		}
	}

	errs = Dedupe(errs)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) message(key string, params ...string) string {
	msg, err := v.translator.T(key, params...)
	if err != nil {
		return key
	}
	return msg
}

func fieldName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

func registerMessages(validate *validator.Validate, trans ut.Translator) error {
	if err := trans.Add(tagPresent, "{0} is required", false); err != nil {
		return err
	}
	if err := trans.Add(tagString, "{0} must be a string", false); err != nil {
		return err
	}
	if err := trans.Add(tagNoNUL, "{0} can't contain null characters", false); err != nil {
		return err
	}

	messages := []struct {
		tag      string
		text     string
		withParm bool
	}{
		{tag: tagRequired, text: "empty string can't be used as a {0}"},
		{tag: tagMax, text: "{0} can't be longer than {1} characters", withParm: true},
		{tag: tagWebsiteURL, text: "incorrect url"},
	}

	for _, m := range messages {
		m := m
		err := validate.RegisterTranslation(m.tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(m.tag, m.text, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				var t string
				if m.withParm {
					t, _ = ut.T(fe.Tag(), fe.Field(), fe.Param())
				} else {
					t, _ = ut.T(fe.Tag(), fe.Field())
				}
				if t == "" {
					return fe.Error()
				}
				return t
			},
		)
		if err != nil {
			return err
		}
	}

	return nil
}
