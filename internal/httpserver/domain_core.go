package httpserver

import (
	"context"
	"fmt"
	"time"

	auditProducer "admin-srv/internal/audit/delivery/kafka/producer"
	auditUsecase "admin-srv/internal/audit/usecase"
	identityPostgre "admin-srv/internal/identity/repository/postgre"
	identityRedis "admin-srv/internal/identity/repository/redis"
	identityUsecase "admin-srv/internal/identity/usecase"
	mailerProducer "admin-srv/internal/mailer/delivery/rabbitmq/producer"
	mailerUsecase "admin-srv/internal/mailer/usecase"
	queryUsecase "admin-srv/internal/query/usecase"
)

// setupCoreDomains builds the usecases shared by several HTTP domains.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	srv.queryUC = queryUsecase.New(srv.store, srv.encrypter, srv.l)

	srv.auditUC = auditUsecase.New(srv.l, auditProducer.New(srv.l, srv.kafkaProducer))

	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}
	mailProducer, err := mailerProducer.New(srv.l, ch)
	if err != nil {
		return fmt.Errorf("failed to set up mail producer: %w", err)
	}
	resetTTL := time.Duration(srv.config.Auth.ResetCodeTTL) * time.Second
	srv.mailerUC = mailerUsecase.New(srv.l, mailProducer, mailerUsecase.Config{
		FrontendURL:  srv.config.Mail.FrontendURL,
		ResetLinkTTL: resetTTL,
	})

	srv.identityUC = identityUsecase.New(
		srv.l,
		identityPostgre.New(srv.postgresDB, srv.l),
		identityRedis.New(srv.redisClient, srv.l),
		srv.jwtManager,
		srv.encrypter,
		srv.store,
		srv.mailerUC,
		identityUsecase.Config{ResetCodeTTL: resetTTL},
	)

	srv.l.Infof(ctx, "Core domains (Query, Audit, Mailer, Identity) initialized")
	return nil
}
