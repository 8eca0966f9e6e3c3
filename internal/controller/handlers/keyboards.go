package handlers

import (
	"github.com/go-telegram/bot/models"

	"github.com/artbeauty/intake-bot/internal/service"
)

// mainKeyboard — главное меню бота
var mainKeyboard = &models.ReplyKeyboardMarkup{
	Keyboard: [][]models.KeyboardButton{
		{{Text: service.ButtonQuickBooking}},
		{{Text: service.ButtonConsultation}},
	},
	ResizeKeyboard: true,
}

// serviceKeyboard — выбор услуги при пошаговой записи
var serviceKeyboard = &models.ReplyKeyboardMarkup{
	Keyboard: [][]models.KeyboardButton{
		{{Text: "Стрижка"}, {Text: "Окрашивание"}},
		{{Text: "Маникюр"}},
		{{Text: service.ButtonCancel}},
	},
	ResizeKeyboard: true,
}

// replyMarkup преобразует подсказку сервиса в клавиатуру Telegram
func replyMarkup(kb service.Keyboard) models.ReplyMarkup {
	switch kb {
	case service.KeyboardMain:
		return mainKeyboard
	case service.KeyboardServices:
		return serviceKeyboard
	case service.KeyboardRemove:
		return &models.ReplyKeyboardRemove{RemoveKeyboard: true}
	default:
		return nil
	}
}
