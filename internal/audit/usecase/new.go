package usecase

import (
	"time"

	"admin-srv/internal/audit"
	"admin-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	producer audit.Producer
	now      func() time.Time
}

func New(l log.Logger, producer audit.Producer) audit.UseCase {
	return &implUseCase{
		l:        l,
		producer: producer,
		now:      time.Now,
	}
}
