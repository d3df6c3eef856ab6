package user

import "admin-srv/internal/query"

const (
	CreateTypeManual = "manual"
	CreateTypeUID    = "uid"

	// DefaultPassword is given to manually created accounts without a password.
	// The new user is sent a reset link right away.
	DefaultPassword = "Admin@25"
)

type ListInput struct {
	Pagination query.Pagination
	Order      []query.Order
	// Search is an email prefix.
	Search     string
	Generation int64
}

type CreateInput struct {
	Type      string
	UID       string
	Email     string
	Password  string
	FirstName string
	LastName  string
	UserName  string
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	UserName  string
}
