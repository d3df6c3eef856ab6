package discord

import (
	"errors"
	"net/http"
	"time"

	"admin-srv/pkg/log"
)

const (
	defaultBaseURL = "https://discord.com/api/webhooks"
	maxDescription = 4000
	maxFieldValue  = 1024

	colorError = 0xe74c3c
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// Config contains configuration for Discord service.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	DefaultUsername string
}

// DefaultConfig returns the default Discord configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:         defaultBaseURL,
		Timeout:         10 * time.Second,
		DefaultUsername: "admin-srv",
	}
}

type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to Discord webhook.
type WebhookPayload struct {
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}
