package service

import "errors"

// BadRequestError is a validation failure whose message is safe to return
// to the caller verbatim.
type BadRequestError struct {
	msg string
}

func (e *BadRequestError) Error() string { return e.msg }

func badRequest(msg string) error { return &BadRequestError{msg: msg} }

var (
	// ErrUnauthorized covers missing, unknown or expired tokens and bad credentials.
	ErrUnauthorized = errors.New("Unauthorized")
	// ErrNotFound covers unknown ids as well as files the caller may not see.
	ErrNotFound = errors.New("Not found")

	ErrMissingEmail    = badRequest("Missing email")
	ErrMissingPassword = badRequest("Missing password")
	ErrAlreadyExist    = badRequest("Already exist")

	ErrMissingName     = badRequest("Missing name")
	ErrMissingType     = badRequest("Missing type")
	ErrMissingData     = badRequest("Missing data")
	ErrInvalidData     = badRequest("Invalid data")
	ErrParentNotFound  = badRequest("Parent not found")
	ErrParentNotFolder = badRequest("Parent is not a folder")
	ErrFolderNoContent = badRequest("A folder doesn't have content")
	ErrInvalidSize     = badRequest("Invalid size")
)
