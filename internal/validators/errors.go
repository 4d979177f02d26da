package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("user id must be a positive integer")
	ErrEmptyName           = errors.New("name is required")
	ErrInvalidEmail        = errors.New("email is invalid")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes")
	ErrEmptyToken          = errors.New("token is required")
	ErrEmptyRecipeID       = errors.New("recipe id is required")
	ErrEmptyIngredientName = errors.New("ingredient name is required")
)
