package usecase

import (
	"time"

	"admin-srv/internal/mailer"
	"admin-srv/pkg/log"
)

type Config struct {
	// FrontendURL is the console base URL the reset link points to.
	FrontendURL string
	// ResetLinkTTL is shown to the recipient as the link lifetime.
	ResetLinkTTL time.Duration
}

type implUseCase struct {
	l        log.Logger
	producer mailer.Producer
	cfg      Config
	now      func() time.Time
}

func New(l log.Logger, producer mailer.Producer, cfg Config) mailer.UseCase {
	return &implUseCase{
		l:        l,
		producer: producer,
		cfg:      cfg,
		now:      time.Now,
	}
}
