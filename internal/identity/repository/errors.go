package repository

import "errors"

var (
	ErrAccountNotFound   = errors.New("repository: account not found")
	ErrEmailTaken        = errors.New("repository: email already registered")
	ErrResetCodeNotFound = errors.New("repository: reset code not found")
)
