package model

// Источник заявки — канал, через который клиент общался с ботом
const (
	SourceTelegram = "Telegram"
	SourceWeb      = "Web"
)

// DefaultComment подставляется, если клиент не оставил комментарий
const DefaultComment = "нет"

// Field — поле анкеты заявки
type Field string

const (
	FieldName    Field = "name"
	FieldPhone   Field = "phone"
	FieldService Field = "service"
	FieldDate    Field = "date"
	FieldMaster  Field = "master"
	FieldComment Field = "comment"
)

// RequiredFields — поля, без которых заявка не отправляется
var RequiredFields = []Field{FieldName, FieldPhone, FieldService, FieldDate, FieldMaster}

// Application — готовая заявка для записи в таблицу и уведомления мастерам
type Application struct {
	Name    string
	Phone   string
	Service string
	Date    string
	Master  string
	Comment string
	Source  string
}

// Row возвращает строку для append в таблицу.
// Порядок колонок фиксирован: Имя, Телефон, Услуга, Дата, Мастер, Комментарий, Источник.
func (a *Application) Row() []interface{} {
	return []interface{}{a.Name, a.Phone, a.Service, a.Date, a.Master, a.Comment, a.Source}
}
