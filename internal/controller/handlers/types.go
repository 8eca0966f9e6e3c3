package handlers

import (
	"github.com/artbeauty/intake-bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки сообщений бота
type Handlers struct {
	guided *service.GuidedService
	logger *zap.Logger
}

// NewHandlers создаёт новый обработчик сообщений
func NewHandlers(guided *service.GuidedService, logger *zap.Logger) *Handlers {
	return &Handlers{
		guided: guided,
		logger: logger,
	}
}
