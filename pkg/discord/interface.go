package discord

import (
	"context"

	"admin-srv/pkg/log"
)

// IDiscord posts operational notifications to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	// SendError posts an error embed. err, when non-nil, becomes an "Error" field.
	SendError(ctx context.Context, title, description string, err error) error
	Close() error
}

// DiscordWebhook contains webhook information for Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
