// Package notify отправляет служебные уведомления о новых заявках
package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/artbeauty/intake-bot/internal/model"
)

// TelegramNotifier шлёт уведомления в служебный чат салона
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID string
	logger *zap.Logger
}

func NewTelegramNotifier(b *bot.Bot, chatID string, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		bot:    b,
		chatID: chatID,
		logger: logger,
	}
}

// Send отправляет текст в служебный чат
func (n *TelegramNotifier) Send(ctx context.Context, text string) error {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	n.logger.Info("Notification sent to admin chat")
	return nil
}

// FormatApplication собирает текст уведомления о новой заявке
func FormatApplication(app *model.Application) string {
	return fmt.Sprintf(
		"🎉 НОВАЯ ЗАЯВКА!\n\n"+
			"Имя: %s\n"+
			"Телефон: %s\n"+
			"Услуга: %s\n"+
			"Дата: %s\n"+
			"Мастер: %s\n"+
			"Источник: %s",
		app.Name, app.Phone, app.Service, app.Date, app.Master, app.Source,
	)
}
