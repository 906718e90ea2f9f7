package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordSink posts notifications to a Discord channel webhook.
type DiscordSink struct {
	session   webhookExecutor
	webhookID string
	token     string
	username  string
}

// NewDiscordSink parses a webhook URL of the form
// https://discord.com/api/webhooks/{id}/{token}.
func NewDiscordSink(webhookURL, username string) (*DiscordSink, error) {
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	// Webhook execution needs no bot token.
	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	return &DiscordSink{session: session, webhookID: id, token: token, username: username}, nil
}

func parseWebhookURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", LogMsgDiscordWebhookParse, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	// .../webhooks/{id}/{token}
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("%s: %q", LogMsgDiscordWebhookParse, raw)
}

func (s *DiscordSink) Name() string { return "discord" }

// Send posts one embed per notification.
func (s *DiscordSink) Send(ctx context.Context, n domain.Notification) error {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf(DiscordEmbedTitleFmt, n.Type, n.Priority),
		Description: n.Message,
		Color:       embedColor(n.Priority),
		Timestamp:   n.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if n.ItemID != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Item", Value: fmt.Sprint(*n.ItemID), Inline: true,
		})
	}
	if n.DeploymentID != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Deployment", Value: fmt.Sprint(*n.DeploymentID), Inline: true,
		})
	}

	_, err := s.session.WebhookExecute(s.webhookID, s.token, false, &discordgo.WebhookParams{
		Username: s.username,
		Embeds:   []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord webhook: %w", err)
	}
	return nil
}

func embedColor(p domain.NotificationPriority) int {
	switch p {
	case domain.PriorityHigh:
		return ColorHigh
	case domain.PriorityMedium:
		return ColorMedium
	default:
		return ColorLow
	}
}
