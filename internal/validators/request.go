package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/recipe-tracker/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID         = "user_id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldNewPassword    = "new_password"
	FieldToken          = "token"
	FieldRecipeID       = "recipe_id"
	FieldIngredientName = "ingredient_name"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// RequestValidator validates the inbound request models of the auth and
// progress services.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the concrete type of obj. A bare int64 is treated
// as a user id. Without fields every rule of the type is applied.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validate(fieldsOr(fields, FieldName, FieldEmail, FieldPassword), map[string]func() error{
			FieldName:     func() error { return validateName(value.Name) },
			FieldEmail:    func() error { return validateEmail(value.Email) },
			FieldPassword: func() error { return validatePassword(value.Password) },
		})
	case models.LoginRequest:
		return v.validate(fieldsOr(fields, FieldEmail, FieldPassword), map[string]func() error{
			FieldEmail:    func() error { return validateEmail(value.Email) },
			FieldPassword: func() error { return validatePassword(value.Password) },
		})
	case models.ChangePasswordRequest:
		return v.validate(fieldsOr(fields, FieldUserID, FieldNewPassword), map[string]func() error{
			FieldUserID:      func() error { return validateUserID(value.UserID) },
			FieldNewPassword: func() error { return validatePassword(value.NewPassword) },
		})
	case models.ForgotPasswordRequest:
		return v.validate(fieldsOr(fields, FieldEmail), map[string]func() error{
			FieldEmail: func() error { return validateEmail(value.Email) },
		})
	case models.ResetPasswordRequest:
		return v.validate(fieldsOr(fields, FieldToken, FieldNewPassword), map[string]func() error{
			FieldToken:       func() error { return validateToken(value.Token) },
			FieldNewPassword: func() error { return validatePassword(value.NewPassword) },
		})
	case models.ProgressKey:
		return v.validate(fieldsOr(fields, FieldUserID, FieldRecipeID), progressKeyRules(value))
	case models.UpdateIngredientRequest:
		rules := progressKeyRules(value.ProgressKey)
		rules[FieldIngredientName] = func() error { return validateIngredientName(value.IngredientName) }
		return v.validate(fieldsOr(fields, FieldUserID, FieldRecipeID, FieldIngredientName), rules)
	case int64:
		return v.validate(fieldsOr(fields, FieldUserID), map[string]func() error{
			FieldUserID: func() error { return validateUserID(value) },
		})
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validate(fields []string, rules map[string]func() error) error {
	for _, f := range fields {
		rule, ok := rules[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err := rule(); err != nil {
			return err
		}
	}
	return nil
}

func fieldsOr(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func progressKeyRules(key models.ProgressKey) map[string]func() error {
	return map[string]func() error{
		FieldUserID:   func() error { return validateUserID(key.UserID) },
		FieldRecipeID: func() error { return validateRecipeID(key.RecipeID) },
	}
}

func validateUserID(id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// validateEmail accepts a bare address (no display name) containing "@".
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || !strings.EqualFold(addr.Address, email) {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func validateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}
	return nil
}

func validateRecipeID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyRecipeID
	}
	return nil
}

func validateIngredientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyIngredientName
	}
	return nil
}
