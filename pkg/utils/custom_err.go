package utils

import "errors"

var (
	ErrBodyValidation     = errors.New("request failed body validation")
	ErrMissingPhoneNumber = errors.New("User has no phone number")
	ErrJourneyNotFound    = errors.New("journey not found")
	ErrDatabaseError      = errors.New("database error")
)
