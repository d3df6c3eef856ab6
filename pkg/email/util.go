package email

import (
	"fmt"
	"html/template"

	"admin-srv/pkg/locale"
)

var messages = map[string]map[string]string{
	locale.EN: {
		"reset_password.subject":  "Reset your admin console password",
		"reset_password.greeting": "Hello",
		"reset_password.intro":    "We received a request to reset the password of your admin console account.",
		"reset_password.action":   "Reset password",
		"reset_password.expire":   "This link expires in %d minutes.",
		"reset_password.ignore":   "If you did not request this, you can ignore this email.",
	},
	locale.VI: {
		"reset_password.subject":  "Đặt lại mật khẩu trang quản trị",
		"reset_password.greeting": "Xin chào",
		"reset_password.intro":    "Chúng tôi nhận được yêu cầu đặt lại mật khẩu cho tài khoản quản trị của bạn.",
		"reset_password.action":   "Đặt lại mật khẩu",
		"reset_password.expire":   "Liên kết sẽ hết hạn sau %d phút.",
		"reset_password.ignore":   "Nếu bạn không yêu cầu, hãy bỏ qua email này.",
	},
}

func translate(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages[locale.DefaultLang][key]
}

func getEmailTemplate(lang string, templateType string) (*template.Template, error) {
	tmplFile := fmt.Sprintf("%s-%s%s", templateType, lang, templateExt)
	tmpl, err := template.New(tmplFile).ParseFS(emailTemplates, templateDir+"/"+tmplFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, tmplFile)
	}
	return tmpl, nil
}

func translateData(lang string, templateType string, data any) (map[string]any, error) {
	switch templateType {
	case ResetPasswordTemplate:
		d, ok := data.(ResetPassword)
		if !ok {
			return nil, fmt.Errorf("email: reset_password expects ResetPassword, got %T", data)
		}
		name := d.Name
		if name == "" {
			name = d.Email
		}
		return map[string]any{
			"Name":     name,
			"Email":    d.Email,
			"Link":     d.ResetLink,
			"Greeting": translate(lang, "reset_password.greeting"),
			"Intro":    translate(lang, "reset_password.intro"),
			"Action":   translate(lang, "reset_password.action"),
			"Expire":   fmt.Sprintf(translate(lang, "reset_password.expire"), d.ExpireMins),
			"Ignore":   translate(lang, "reset_password.ignore"),
		}, nil
	}
	return nil, ErrUnknownTemplate
}
