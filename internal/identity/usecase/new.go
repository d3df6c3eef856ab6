package usecase

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"admin-srv/internal/docstore"
	"admin-srv/internal/identity"
	"admin-srv/internal/identity/repository"
	"admin-srv/internal/mailer"
	"admin-srv/pkg/encrypter"
	"admin-srv/pkg/jwt"
	"admin-srv/pkg/log"
)

const (
	DefaultResetCodeTTL = time.Hour
	resetCodeLength     = 32
)

type Config struct {
	ResetCodeTTL time.Duration
}

type implUseCase struct {
	l         log.Logger
	accounts  repository.AccountRepository
	tokens    repository.TokenRepository
	jwt       jwt.IManager
	enc       encrypter.Encrypter
	store     docstore.Store
	mailer    mailer.UseCase
	cfg       Config
	now       func() time.Time
	resetCode func() (string, error)
}

func New(
	l log.Logger,
	accounts repository.AccountRepository,
	tokens repository.TokenRepository,
	jwtManager jwt.IManager,
	enc encrypter.Encrypter,
	store docstore.Store,
	mailerUC mailer.UseCase,
	cfg Config,
) identity.UseCase {
	if cfg.ResetCodeTTL <= 0 {
		cfg.ResetCodeTTL = DefaultResetCodeTTL
	}
	return &implUseCase{
		l:         l,
		accounts:  accounts,
		tokens:    tokens,
		jwt:       jwtManager,
		enc:       enc,
		store:     store,
		mailer:    mailerUC,
		cfg:       cfg,
		now:       time.Now,
		resetCode: newResetCode,
	}
}

func newResetCode() (string, error) {
	return gonanoid.New(resetCodeLength)
}
