package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/artbeauty/intake-bot/internal/model"
	"github.com/artbeauty/intake-bot/internal/notify"
	"github.com/artbeauty/intake-bot/internal/state"
)

// Ledger — внешнее хранилище подтверждённых заявок
type Ledger interface {
	AppendApplication(ctx context.Context, app *model.Application) error
}

// Notifier — канал служебных уведомлений, работает best-effort
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Outcome — результат попытки отправить заявку
type Outcome int

const (
	// OutcomeIncomplete — данных ещё не хватает, обычное промежуточное
	// состояние, не ошибка
	OutcomeIncomplete Outcome = iota
	// OutcomeSubmitted — заявка записана, сессия очищена
	OutcomeSubmitted
	// OutcomeFailed — хранилище недоступно, анкета сохранена для повтора
	OutcomeFailed
)

// IntakeService решает, когда данных достаточно для заявки,
// и гарантирует не больше одной успешной отправки на сессию
type IntakeService struct {
	sessions *state.Manager
	ledger   Ledger
	notifier Notifier
	logger   *zap.Logger
}

func NewIntakeService(sessions *state.Manager, ledger Ledger, notifier Notifier, logger *zap.Logger) *IntakeService {
	return &IntakeService{
		sessions: sessions,
		ledger:   ledger,
		notifier: notifier,
		logger:   logger,
	}
}

// Attempt проверяет полноту анкеты и отправляет заявку.
// Вызывается после каждого хода диалога; пока полей не хватает, молча
// возвращает OutcomeIncomplete. При ошибке хранилища анкета остаётся
// нетронутой, чтобы следующий ход мог повторить отправку без повторного
// ввода данных.
func (s *IntakeService) Attempt(ctx context.Context, sessionID, source string) (Outcome, *model.Application) {
	form := s.sessions.FormSnapshot(sessionID)

	for _, field := range model.RequiredFields {
		if form[field] == "" {
			return OutcomeIncomplete, nil
		}
	}

	comment := form[model.FieldComment]
	if comment == "" {
		comment = model.DefaultComment
	}

	app := &model.Application{
		Name:    form[model.FieldName],
		Phone:   form[model.FieldPhone],
		Service: form[model.FieldService],
		Date:    form[model.FieldDate],
		Master:  form[model.FieldMaster],
		Comment: comment,
		Source:  source,
	}

	if err := s.ledger.AppendApplication(ctx, app); err != nil {
		s.logger.Error("Failed to save application",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return OutcomeFailed, nil
	}

	s.logger.Info("Application saved",
		zap.String("session_id", sessionID),
		zap.String("service", app.Service),
		zap.String("source", app.Source))

	// Уведомление не откатывает заявку: строка уже в таблице
	if err := s.notifier.Send(ctx, notify.FormatApplication(app)); err != nil {
		s.logger.Warn("Failed to notify admin chat",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}

	s.sessions.Clear(sessionID)

	return OutcomeSubmitted, app
}
