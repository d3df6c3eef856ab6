package identity

import (
	"time"

	"admin-srv/internal/model"
)

type SignInInput struct {
	Email    string
	Password string
}

type SignInOutput struct {
	Token     string
	ExpiresAt time.Time
	User      model.User
}

type ConfirmPasswordResetInput struct {
	Code        string
	NewPassword string
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

type CreateAccountInput struct {
	Email    string
	Password string
}
