package notifier

import (
	"fmt"

	"github.com/dmorosoli/volleywatch/internal/telegram"
)

// TelegramNotifier delivers alerts to a Telegram chat.
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegramNotifier creates a Telegram notifier from bot credentials.
func NewTelegramNotifier(botToken, chatID string) (*TelegramNotifier, error) {
	client, err := telegram.NewClient(botToken, chatID)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}
	return &TelegramNotifier{client: client}, nil
}

// Notify sends the alert message to the configured chat.
func (n *TelegramNotifier) Notify(alert Alert) error {
	if err := n.client.SendMessage(FormatAlert(alert)); err != nil {
		return fmt.Errorf("sending %s alert for %s: %w", alert.Kind, alert.Key, err)
	}
	return nil
}
