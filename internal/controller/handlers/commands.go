package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/artbeauty/intake-bot/internal/service"
)

// sessionID строит ключ сессии с префиксом канала
func sessionID(telegramID int64) string {
	return fmt.Sprintf("tg:%d", telegramID)
}

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	h.logger.Info("HandleStart called",
		zap.Int64("telegram_id", telegramID))

	reply := h.guided.Start(sessionID(telegramID))
	h.send(ctx, b, update.Message.Chat.ID, reply)
}

// HandleTextMessage обрабатывает все текстовые сообщения согласно
// текущему шагу пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются другими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID

	h.logger.Info("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID))

	reply := h.guided.Advance(ctx, sessionID(telegramID), update.Message.Text)
	h.send(ctx, b, update.Message.Chat.ID, reply)
}

// send отправляет ответ с клавиатурой, подсказанной сервисом
func (h *Handlers) send(ctx context.Context, b *bot.Bot, chatID int64, reply service.Reply) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        reply.Text,
		ReplyMarkup: replyMarkup(reply.Keyboard),
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
