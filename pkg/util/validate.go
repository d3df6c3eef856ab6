package util

import (
	"errors"
	"regexp"
	"strings"
)

const (
	passwordMinLen   = 8
	passwordMaxLen   = 16
	passwordSpecials = "!@#$%^&*"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRegex     = regexp.MustCompile(`(?i)^[a-z ,.'-]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)
)

func IsEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email")
	}
	return nil
}

// IsName accepts letters, spaces and the punctuation , . ' -
func IsName(name string) error {
	if !nameRegex.MatchString(name) {
		return errors.New("invalid name")
	}
	return nil
}

func IsUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.New("invalid username")
	}
	return nil
}

// IsPassword requires 8 to 16 characters from [a-zA-Z0-9!@#$%^&*] with at least
// one letter and one digit.
func IsPassword(password string) error {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return errors.New("password must be between 8 and 16 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
		default:
			return errors.New("password contains an invalid character")
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one number")
	}
	return nil
}
