package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of an inbound request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned by Login when the password does not match the stored hash.
	ErrWrongPassword = errors.New("invalid password")

	// ErrInvalidOrExpiredToken is returned by ResetPassword for unknown, expired
	// or already redeemed tokens.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	ErrHashingPassword = errors.New("error hashing password")
	ErrGeneratingToken = errors.New("error generating reset token")
)
