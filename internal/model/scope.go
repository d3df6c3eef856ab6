package model

// Scope identifies the authenticated console user of a request.
type Scope struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenID   string `json:"token_id"`
	ExpiresAt int64  `json:"expires_at"`
}

func (s Scope) IsAuthenticated() bool {
	return s.UserID != ""
}
