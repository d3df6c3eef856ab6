package mailer

import "errors"

var (
	ErrRenderFailed  = errors.New("mailer: failed to render mail")
	ErrPublishFailed = errors.New("mailer: failed to publish mail")
)
