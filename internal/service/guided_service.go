package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/artbeauty/intake-bot/internal/extract"
	"github.com/artbeauty/intake-bot/internal/model"
	"github.com/artbeauty/intake-bot/internal/state"
)

// Кнопки главного меню и меню услуг
const (
	ButtonQuickBooking = "Быстрая запись"
	ButtonConsultation = "Консультация"
	ButtonCancel       = "Отмена"
)

// Services — фиксированный список услуг салона
var Services = []string{"Стрижка", "Окрашивание", "Маникюр"}

// Keyboard — подсказка транспорту, какую клавиатуру показать с ответом
type Keyboard int

const (
	KeyboardNone     Keyboard = iota
	KeyboardMain              // Быстрая запись / Консультация
	KeyboardServices          // Список услуг + Отмена
	KeyboardRemove            // Убрать клавиатуру на время свободного ввода
)

// Reply — ответ пошаговой записи: текст и клавиатура к нему
type Reply struct {
	Text     string
	Keyboard Keyboard
}

// GuidedService — конечный автомат пошаговой записи.
// Каждое обязательное поле запрашивается явным вопросом, поэтому к шагу
// выбора мастера анкета полна по построению.
type GuidedService struct {
	sessions *state.Manager
	dialog   *DialogService
	intake   *IntakeService
	logger   *zap.Logger
}

func NewGuidedService(sessions *state.Manager, dialog *DialogService, intake *IntakeService, logger *zap.Logger) *GuidedService {
	return &GuidedService{
		sessions: sessions,
		dialog:   dialog,
		intake:   intake,
		logger:   logger,
	}
}

// Start обрабатывает /start: приветствие и возврат в главное меню
func (s *GuidedService) Start(sessionID string) Reply {
	s.sessions.SetStage(sessionID, state.StageChoosing)
	s.sessions.SetMode(sessionID, state.ModeFreeform)

	return Reply{
		Text:     "Здравствуйте! Я бот-администратор салона красоты. Чем могу помочь?",
		Keyboard: KeyboardMain,
	}
}

// Advance обрабатывает текстовое сообщение согласно текущему шагу
func (s *GuidedService) Advance(ctx context.Context, sessionID, text string) Reply {
	stage := s.sessions.Stage(sessionID)

	s.logger.Info("Guided flow step",
		zap.String("session_id", sessionID),
		zap.String("stage", string(stage)))

	switch stage {
	case state.StageTypingName:
		return s.handleName(sessionID, text)
	case state.StageTypingPhone:
		return s.handlePhone(sessionID, text)
	case state.StageTypingService:
		return s.handleService(sessionID, text)
	case state.StageTypingDate:
		return s.handleDate(sessionID, text)
	case state.StageTypingMaster:
		return s.handleMaster(ctx, sessionID, text)
	default:
		// StageChoosing и сессии без /start ведут себя одинаково
		return s.handleChoosing(ctx, sessionID, text)
	}
}

// handleChoosing — главное меню: вход в пошаговую запись либо свободный вопрос
func (s *GuidedService) handleChoosing(ctx context.Context, sessionID, text string) Reply {
	if text == ButtonQuickBooking {
		// Новая попытка записи начинается с чистой анкеты
		s.sessions.ClearForm(sessionID)
		s.sessions.SetMode(sessionID, state.ModeGuided)
		s.sessions.SetStage(sessionID, state.StageTypingName)

		return Reply{
			Text:     "Как я могу к вам обращаться? Пожалуйста, напишите ваше имя.",
			Keyboard: KeyboardRemove,
		}
	}

	// Любой другой текст — вопрос для ассистента
	answer := s.dialog.HandleMessage(ctx, sessionID, text, model.SourceTelegram)
	return Reply{Text: answer, Keyboard: KeyboardMain}
}

func (s *GuidedService) handleName(sessionID, text string) Reply {
	s.sessions.SetField(sessionID, model.FieldName, text)
	s.sessions.SetStage(sessionID, state.StageTypingPhone)

	return Reply{
		Text: "Спасибо! Теперь, пожалуйста, укажите ваш номер телефона в формате 79XXXXXXXXX",
	}
}

func (s *GuidedService) handlePhone(sessionID, text string) Reply {
	if !extract.ValidPhone(text) {
		return Reply{
			Text: "Пожалуйста, введите корректный номер телефона в формате 79XXXXXXXXX",
		}
	}

	s.sessions.SetField(sessionID, model.FieldPhone, text)
	s.sessions.SetStage(sessionID, state.StageTypingService)

	return Reply{
		Text:     "Выберите услугу:",
		Keyboard: KeyboardServices,
	}
}

func (s *GuidedService) handleService(sessionID, text string) Reply {
	if text == ButtonCancel {
		// Анкета этой попытки не сохраняется
		s.sessions.ClearForm(sessionID)
		s.sessions.SetMode(sessionID, state.ModeFreeform)
		s.sessions.SetStage(sessionID, state.StageChoosing)

		return Reply{
			Text:     "Запись отменена. Чем ещё могу помочь?",
			Keyboard: KeyboardMain,
		}
	}

	if !validService(text) {
		return Reply{
			Text:     "Пожалуйста, выберите услугу из предложенных вариантов",
			Keyboard: KeyboardServices,
		}
	}

	s.sessions.SetField(sessionID, model.FieldService, text)
	s.sessions.SetStage(sessionID, state.StageTypingDate)

	return Reply{
		Text:     "На какую дату вы хотели бы записаться? (например, «15 сентября»)",
		Keyboard: KeyboardRemove,
	}
}

func (s *GuidedService) handleDate(sessionID, text string) Reply {
	// Дата сохраняется как есть, записи подтверждает администратор
	s.sessions.SetField(sessionID, model.FieldDate, text)
	s.sessions.SetStage(sessionID, state.StageTypingMaster)

	return Reply{
		Text: "Укажите предпочтительного мастера (если нет предпочтений, напишите «любой»)",
	}
}

// handleMaster — последний шаг: анкета полна, отправляем заявку.
// В главное меню возвращаемся при любом исходе.
func (s *GuidedService) handleMaster(ctx context.Context, sessionID, text string) Reply {
	s.sessions.SetField(sessionID, model.FieldMaster, text)
	s.sessions.SetMode(sessionID, state.ModeFreeform)
	s.sessions.SetStage(sessionID, state.StageChoosing)

	outcome, app := s.intake.Attempt(ctx, sessionID, model.SourceTelegram)
	if outcome != OutcomeSubmitted {
		return Reply{
			Text:     "Извините, произошла ошибка при сохранении заявки. Пожалуйста, попробуйте позже.",
			Keyboard: KeyboardMain,
		}
	}

	return Reply{
		Text: fmt.Sprintf(
			"Отлично! Ваша запись оформлена:\n"+
				"Имя: %s\n"+
				"Телефон: %s\n"+
				"Услуга: %s\n"+
				"Дата: %s\n"+
				"Мастер: %s\n\n"+
				"Мы свяжемся с вами для подтверждения записи!",
			app.Name, app.Phone, app.Service, app.Date, app.Master,
		),
		Keyboard: KeyboardMain,
	}
}

func validService(text string) bool {
	for _, svc := range Services {
		if text == svc {
			return true
		}
	}
	return false
}
