package email

import (
	"bytes"
	"context"

	"admin-srv/pkg/locale"
)

// NewEmail renders the template named by e.TemplateType in the locale carried by ctx.
// The default language is used when ctx has no locale.
func NewEmail(ctx context.Context, e EmailMeta, data any) (Email, error) {
	lang, ok := locale.GetLocaleFromContext(ctx)
	if !ok || !locale.IsValidLang(lang) {
		lang = locale.DefaultLang
	}

	tmpl, err := getEmailTemplate(lang, e.TemplateType)
	if err != nil {
		return Email{}, err
	}

	translated, err := translateData(lang, e.TemplateType, data)
	if err != nil {
		return Email{}, err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, translated); err != nil {
		return Email{}, err
	}

	return Email{
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   translate(lang, e.TemplateType+".subject"),
		Body:      body.String(),
	}, nil
}
