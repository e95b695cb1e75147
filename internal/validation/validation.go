// Package validation проверяет DTO запросов по struct-тегам validate.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// TagStrongPassword требует заглавную и строчную буквы, цифру и спецсимвол
const TagStrongPassword = "strongpassword"

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// Validator проверяет структуры и переводит ошибки в читаемые сообщения
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New создает Validator с английскими сообщениями об ошибках
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях используем имена полей из JSON
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register translations: %w", err)
	}

	if err := validate.RegisterValidation(TagStrongPassword, strongPassword); err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", TagStrongPassword, err)
	}

	err := validate.RegisterTranslation(TagStrongPassword, trans,
		func(ut ut.Translator) error {
			return ut.Add(TagStrongPassword,
				"{0} must contain an uppercase letter, a lowercase letter, a number and a special character", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(TagStrongPassword, fe.Field())
			return t
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register %s translation: %w", TagStrongPassword, err)
	}

	return &Validator{validate: validate, trans: trans}, nil
}

// Struct проверяет структуру. Нарушения возвращаются как apperror с KindBadRequest.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.Wrap(apperror.KindBadRequest, "Invalid request body", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fe.Translate(v.trans))
	}
	return apperror.Wrap(apperror.KindBadRequest, strings.Join(messages, "; "), err)
}

func strongPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}
