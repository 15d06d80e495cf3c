package service

import "errors"

var (
	// ErrValidation indicates the request failed input validation;
	// nothing was mutated
	ErrValidation = errors.New("validation failed")

	// ErrPermissionDenied indicates the caller does not own the
	// targeted resource
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound indicates the targeted resource does not exist
	ErrNotFound = errors.New("not found")
)
