package email

import "embed"

//go:embed templates/*.tmpl
var emailTemplates embed.FS

// Template types. Each has one <type>-<lang>.tmpl file per supported language.
const (
	ResetPasswordTemplate = "reset_password"

	templateDir = "templates"
	templateExt = ".tmpl"
)
