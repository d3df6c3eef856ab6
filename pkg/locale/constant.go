package locale

import "errors"

const (
	EN = "en"
	VI = "vi"
)

// LangList contains all supported language codes.
var LangList = []string{EN, VI}

// DefaultLang is used when the request carries no supported locale.
var DefaultLang = EN

var ErrLocaleNotFound = errors.New("locale not found in context")

// Locale is the context key for the request language.
type Locale struct{}
