package postgre

const (
	accountColumns = "id, email, password_hash, created_at, updated_at"

	insertAccountQuery     = "INSERT INTO accounts (" + accountColumns + ") VALUES ($1, $2, $3, $4, $4)"
	selectAccountByIDQuery = "SELECT " + accountColumns + " FROM accounts WHERE id = $1"
	selectAccountByEmail   = "SELECT " + accountColumns + " FROM accounts WHERE email = $1"
	updatePasswordQuery    = "UPDATE accounts SET password_hash = $2, updated_at = $3 WHERE id = $1"
	deleteAccountQuery     = "DELETE FROM accounts WHERE id = $1"

	uniqueViolation = "23505"
)
