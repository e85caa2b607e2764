package watcher

import (
	"fmt"
	"log/slog"
	"strings"

	"courtbook/internal/pkg/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers "new slots appeared" messages for a watch target.
type Notifier interface {
	NotifyNewSlots(target config.WatchTarget, slots []SlotRecord) error
}

// TelegramNotifier sends one message per target to its configured chat.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI) *TelegramNotifier {
	return &TelegramNotifier{bot: bot}
}

func (n *TelegramNotifier) NotifyNewSlots(target config.WatchTarget, slots []SlotRecord) error {
	if target.ChatID == 0 || len(slots) == 0 {
		return nil
	}

	var message strings.Builder
	message.WriteString(fmt.Sprintf("🎾 New free slots for court %d:\n\n", target.CourtID))
	for _, s := range slots {
		line := fmt.Sprintf("%s %s–%s", s.Date, s.Start.Format("15:04"), s.End.Format("15:04"))
		if s.Price != nil {
			currency := s.Currency
			if currency == "" {
				currency = "ARS"
			}
			line += fmt.Sprintf(" (%.0f %s)", *s.Price, currency)
		}
		message.WriteString(line + "\n")
	}

	msg := tgbotapi.NewMessage(target.ChatID, message.String())
	_, err := n.bot.Send(msg)
	return err
}

// LogNotifier is used when no bot token is configured; changes are still
// visible in the logs.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyNewSlots(target config.WatchTarget, slots []SlotRecord) error {
	n.logger.Info("new free slots",
		"target", target.ID,
		"court_id", target.CourtID,
		"count", len(slots),
	)
	return nil
}
