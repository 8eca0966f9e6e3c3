// Package extract распознаёт поля заявки в свободном тексте клиента.
//
// Правила проверяются в фиксированном порядке приоритета; каждое сообщение
// заполняет максимум одно поле, и уже заполненное поле никогда не
// перезаписывается. Услуга проверяется первой, потому что её ключевые
// слова пересекаются с текстом, который иначе был бы принят за имя.
package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/artbeauty/intake-bot/internal/model"
)

// serviceKeywords — названия услуг и глаголы намерения
var serviceKeywords = []string{"маникюр", "окрашивание", "стрижка", "подстричься", "хочу"}

// monthNames — месяцы в родительном падеже, как их пишут в дате
var monthNames = []string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// masterKeywords — должности мастеров салона
var masterKeywords = []string{"стилист", "топ-стилист", "арт-директор", "ведущий"}

// commentNegations — варианты ответа "комментариев нет"
var commentNegations = []string{"нет", "без комментариев", "нет комментариев", "нте"}

const nameMaxLength = 50

// rule связывает поле анкеты с предикатом.
// lower — сообщение в нижнем регистре, original — как его написал клиент.
type rule struct {
	field model.Field
	match func(lower, original string) bool
}

// rules — порядок приоритета, первое совпадение выигрывает
var rules = []rule{
	{model.FieldService, matchService},
	{model.FieldPhone, matchPhone},
	{model.FieldDate, matchDate},
	{model.FieldMaster, matchMaster},
	{model.FieldName, matchName},
	{model.FieldComment, matchComment},
}

// ValidPhone проверяет телефон: только цифры, длина от 7 до 15
func ValidPhone(phone string) bool {
	if len(phone) < 7 || len(phone) > 15 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func matchService(lower, _ string) bool {
	return containsAny(lower, serviceKeywords)
}

func matchPhone(_, original string) bool {
	return ValidPhone(original)
}

func matchDate(lower, _ string) bool {
	return containsAny(lower, monthNames)
}

func matchMaster(lower, _ string) bool {
	return containsAny(lower, masterKeywords)
}

// matchName — запасная классификация: короткий текст без цифр,
// не похожий на услугу
func matchName(lower, original string) bool {
	if utf8.RuneCountInString(original) > nameMaxLength {
		return false
	}
	if hasDigit(original) {
		return false
	}
	return !containsAny(lower, serviceKeywords)
}

func matchComment(lower, _ string) bool {
	for _, neg := range commentNegations {
		if lower == neg {
			return true
		}
	}
	return strings.Contains(lower, "комментари")
}

// Fill проходит по сообщениям клиента и дозаполняет пустые поля анкеты.
// Повторный запуск по той же истории ничего не меняет: заполненные
// поля пропускаются.
func Fill(form map[model.Field]string, history []model.Message) {
	for _, msg := range history {
		if msg.Role != model.RoleUser {
			continue
		}
		lower := strings.ToLower(msg.Content)
		for _, r := range rules {
			if form[r.field] != "" {
				continue
			}
			if r.match(lower, msg.Content) {
				form[r.field] = msg.Content
				break
			}
		}
	}
}
