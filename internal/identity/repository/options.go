package repository

type CreateAccountOptions struct {
	ID           string
	Email        string
	PasswordHash string
}

type UpdatePasswordOptions struct {
	AccountID    string
	PasswordHash string
}
