package domain

import "errors"

// Authentication failures are deliberately coarse: the client must not be able
// to tell "no such user" from "wrong password", nor learn which token check
// rejected it.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrForbidden           = errors.New("forbidden")

	// ErrValidation marks malformed input; wrap it with the concrete message.
	ErrValidation = errors.New("validation failed")

	ErrEmailTaken    = errors.New("email already in use")
	ErrUsernameTaken = errors.New("username already in use")
	ErrUserNotFound  = errors.New("user not found")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrBlogNotFound     = errors.New("blog not found")
	ErrNotBlogAuthor    = errors.New("user cannot modify this blog")
)
