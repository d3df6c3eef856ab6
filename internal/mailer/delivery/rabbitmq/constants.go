package rabbitmq

import pkgRabbit "admin-srv/pkg/rabbitmq"

const (
	ExchangeMail            = "admin.mail"
	ExchangeKind            = pkgRabbit.ExchangeTypeTopic
	RoutingKeyResetPassword = "mail.reset_password"
	ContentTypeJSON         = pkgRabbit.ContentTypeJSON
)
