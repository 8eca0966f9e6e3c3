package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/artbeauty/intake-bot/internal/extract"
	"github.com/artbeauty/intake-bot/internal/model"
	"github.com/artbeauty/intake-bot/internal/state"
)

// Responder — внешний диалоговый ассистент: по истории сообщений
// возвращает следующий ответ
type Responder interface {
	Respond(ctx context.Context, history []model.Message) (string, error)
}

// apologyText показывается вместо любой ошибки ассистента
const apologyText = "Извините, произошла ошибка при обработке вашего запроса. Попробуйте позже."

// DialogService обрабатывает ход свободного чата: копит историю,
// извлекает поля анкеты и после каждого хода пробует отправить заявку
type DialogService struct {
	sessions  *state.Manager
	responder Responder
	intake    *IntakeService
	logger    *zap.Logger
}

func NewDialogService(sessions *state.Manager, responder Responder, intake *IntakeService, logger *zap.Logger) *DialogService {
	return &DialogService{
		sessions:  sessions,
		responder: responder,
		intake:    intake,
		logger:    logger,
	}
}

// HandleMessage обрабатывает одно входящее сообщение свободного чата
// и возвращает текст ответа для канала.
func (s *DialogService) HandleMessage(ctx context.Context, sessionID, text, source string) string {
	s.sessions.Append(sessionID, model.Message{Role: model.RoleUser, Content: text})

	history := s.sessions.History(sessionID)

	// Дозаполняем пустые поля анкеты по всей истории
	form := s.sessions.FormSnapshot(sessionID)
	extract.Fill(form, history)
	for field, value := range form {
		s.sessions.SetFieldIfEmpty(sessionID, field, value)
	}

	outcome, app := s.intake.Attempt(ctx, sessionID, source)
	switch outcome {
	case OutcomeSubmitted:
		// Сессия уже очищена, ассистента не спрашиваем — отвечаем сами
		return confirmationText(app)
	case OutcomeFailed:
		return "Извините, не получилось сохранить заявку. Пожалуйста, попробуйте позже — ваши данные не потерялись."
	}

	reply, err := s.responder.Respond(ctx, history)
	if err != nil {
		s.logger.Error("Assistant request failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		reply = apologyText
	}

	s.sessions.Append(sessionID, model.Message{Role: model.RoleAssistant, Content: reply})

	return reply
}

// confirmationText собирает подтверждение записи для клиента
func confirmationText(app *model.Application) string {
	return fmt.Sprintf(
		"✅ Ваша заявка принята!\n\n"+
			"Имя: %s\n"+
			"Телефон: %s\n"+
			"Услуга: %s\n"+
			"Дата: %s\n"+
			"Мастер: %s\n\n"+
			"Мы свяжемся с вами для подтверждения записи!",
		app.Name, app.Phone, app.Service, app.Date, app.Master,
	)
}
