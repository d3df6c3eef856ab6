package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"admin-srv/internal/mailer"
	"admin-srv/pkg/email"
	"admin-srv/pkg/locale"
)

const resetPasswordPath = "/reset-password"

func (uc *implUseCase) SendResetPassword(ctx context.Context, input mailer.SendResetPasswordInput) error {
	link := uc.resetLink(input.Code)

	e, err := email.NewEmail(ctx, email.EmailMeta{
		Recipient:    input.Email,
		TemplateType: email.ResetPasswordTemplate,
	}, email.ResetPassword{
		Name:       input.Name,
		Email:      input.Email,
		ResetLink:  link,
		ExpireMins: int(uc.cfg.ResetLinkTTL.Minutes()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "mailer.usecase.SendResetPassword: Failed to render mail: %v", err)
		return fmt.Errorf("%w: %v", mailer.ErrRenderFailed, err)
	}

	msg := mailer.MailMessage{
		Type:      mailer.MailTypeResetPassword,
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   e.Subject,
		Body:      e.Body,
		Lang:      locale.GetLang(ctx),
		CreatedAt: uc.now(),
	}
	if err := uc.producer.PublishMail(ctx, msg); err != nil {
		uc.l.Errorf(ctx, "mailer.usecase.SendResetPassword: Failed to publish mail: %v", err)
		return fmt.Errorf("%w: %v", mailer.ErrPublishFailed, err)
	}
	return nil
}

// resetLink builds <frontend_url>/reset-password?oobCode=<code>.
func (uc *implUseCase) resetLink(code string) string {
	base := strings.TrimRight(uc.cfg.FrontendURL, "/")
	return base + resetPasswordPath + "?oobCode=" + url.QueryEscape(code)
}
