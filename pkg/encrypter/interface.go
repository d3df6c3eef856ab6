package encrypter

// Encrypter provides symmetric sealing of opaque tokens and password hashing.
// Implementations are safe for concurrent use.
//
//go:generate mockery --name Encrypter
type Encrypter interface {
	// Seal encrypts data into a URL safe token.
	Seal(data []byte) (string, error)
	// Open reverses Seal.
	Open(token string) ([]byte, error)
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// New creates an Encrypter. The AES-256 key is derived from secret.
func New(secret string) Encrypter {
	return &implEncrypter{key: deriveKey(secret), cost: DefaultCost}
}

// NewWithCost is New with an explicit bcrypt cost.
func NewWithCost(secret string, cost int) Encrypter {
	return &implEncrypter{key: deriveKey(secret), cost: cost}
}
