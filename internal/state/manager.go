package state

import (
	"sync"

	"github.com/artbeauty/intake-bot/internal/model"
)

// DefaultHistoryLimit — размер скользящего окна истории сообщений
const DefaultHistoryLimit = 30

// Manager управляет сессиями пользователей.
// Ключ — идентификатор с префиксом канала ("tg:<id>", "web:<id>"),
// поэтому Telegram и веб-чат не пересекаются между собой.
type Manager struct {
	mu       sync.RWMutex
	limit    int
	sessions map[string]*Session
}

// NewManager создаёт новый менеджер сессий.
// limit <= 0 означает окно по умолчанию.
func NewManager(limit int) *Manager {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Manager{
		limit:    limit,
		sessions: make(map[string]*Session),
	}
}

// getOrCreate возвращает сессию, создавая её при первом сообщении.
// Вызывается только под заблокированным mu.
func (m *Manager) getOrCreate(id string) *Session {
	if s, exists := m.sessions[id]; exists {
		return s
	}
	s := &Session{Form: make(map[model.Field]string)}
	m.sessions[id] = s
	return s
}

// Append добавляет сообщение в историю и обрезает её до окна
func (m *Manager) Append(id string, msg model.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.getOrCreate(id)
	s.History = append(s.History, msg)
	if len(s.History) > m.limit {
		s.History = s.History[len(s.History)-m.limit:]
	}
}

// History возвращает копию истории сообщений
func (m *Manager) History(id string) []model.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.sessions[id]
	if !exists {
		return nil
	}
	history := make([]model.Message, len(s.History))
	copy(history, s.History)
	return history
}

// SetField записывает поле анкеты, перезаписывая прежнее значение.
// Используется пошаговой записью, где пользователь явно вводит каждое поле.
func (m *Manager) SetField(id string, field model.Field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getOrCreate(id).Form[field] = value
}

// SetFieldIfEmpty записывает поле только если оно ещё пустое.
// Используется экстрактором: однажды распознанное поле не перезаписывается.
func (m *Manager) SetFieldIfEmpty(id string, field model.Field, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.getOrCreate(id)
	if s.Form[field] != "" {
		return false
	}
	s.Form[field] = value
	return true
}

// Field возвращает значение поля анкеты
func (m *Manager) Field(id string, field model.Field) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, exists := m.sessions[id]; exists {
		return s.Form[field]
	}
	return ""
}

// FormSnapshot возвращает копию анкеты
func (m *Manager) FormSnapshot(id string) map[model.Field]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	form := make(map[model.Field]string)
	if s, exists := m.sessions[id]; exists {
		for k, v := range s.Form {
			form[k] = v
		}
	}
	return form
}

// ClearForm сбрасывает анкету, не трогая историю.
// Используется при отмене пошаговой записи.
func (m *Manager) ClearForm(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, exists := m.sessions[id]; exists {
		s.Form = make(map[model.Field]string)
	}
}

// Clear сбрасывает историю и анкету после успешной отправки заявки.
// Режим и шаг сохраняются, пользователь может сразу начать новую запись.
func (m *Manager) Clear(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, exists := m.sessions[id]; exists {
		s.History = nil
		s.Form = make(map[model.Field]string)
	}
}

// SetStage устанавливает шаг пошаговой записи
func (m *Manager) SetStage(id string, stage Stage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getOrCreate(id).Stage = stage
}

// Stage возвращает текущий шаг пользователя
func (m *Manager) Stage(id string) Stage {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, exists := m.sessions[id]; exists {
		return s.Stage
	}
	return StageNone
}

// SetMode устанавливает режим общения
func (m *Manager) SetMode(id string, mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.getOrCreate(id).Mode = mode
}

// Mode возвращает режим общения пользователя
func (m *Manager) Mode(id string) Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, exists := m.sessions[id]; exists {
		return s.Mode
	}
	return ModeFreeform
}
