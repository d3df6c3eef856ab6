package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCreateType = errors.New("invalid create type")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidUserName   = errors.New("invalid user name")
	ErrUIDRequired       = errors.New("uid is required")
	ErrUserExists        = errors.New("user already exists")
	ErrCannotDeleteSelf  = errors.New("cannot delete the signed in user")
)
