package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists indicates that the user_id or email is already taken.
	ErrUserExists = errors.New("user with this user_id or email already exists")
	// ErrInvalidUserID indicates that the provided user ID is invalid (e.g., empty).
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrPasswordAlreadySet indicates that the account already has a usable password.
	ErrPasswordAlreadySet = errors.New("password already set")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInactiveUser indicates that the account is disabled.
	ErrInactiveUser = errors.New("user is inactive")
)
