package models

import "errors"

var (
	ErrMissingField         = errors.New("missing required field")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrDuplicateParticipant = errors.New("participants must be unique and exclude the creator")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("requesting user does not own this transaction")
	ErrDependency           = errors.New("dependency failure")
)
