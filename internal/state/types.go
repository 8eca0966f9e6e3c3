package state

import (
	"github.com/artbeauty/intake-bot/internal/model"
)

// Stage — текущий шаг пользователя в пошаговой записи
type Stage string

const (
	StageNone Stage = "" // Нет активного диалога

	StageChoosing      Stage = "choosing"       // Главное меню после /start
	StageTypingName    Stage = "typing_name"    // Ввод имени
	StageTypingPhone   Stage = "typing_phone"   // Ввод телефона
	StageTypingService Stage = "typing_service" // Выбор услуги
	StageTypingDate    Stage = "typing_date"    // Ввод даты
	StageTypingMaster  Stage = "typing_master"  // Выбор мастера
)

// Mode — режим общения: пошаговая запись или свободный чат
type Mode string

const (
	ModeFreeform Mode = ""       // Свободный чат, поля извлекаются эвристикой
	ModeGuided   Mode = "guided" // Пошаговая запись
)

// Session хранит состояние одного диалога: историю сообщений и собранную анкету
type Session struct {
	History []model.Message
	Form    map[model.Field]string
	Mode    Mode
	Stage   Stage
}
