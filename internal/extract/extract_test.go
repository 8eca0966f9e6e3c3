package extract

import (
	"reflect"
	"testing"

	"github.com/artbeauty/intake-bot/internal/model"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"123456", false},            // 6 цифр — короткий
		{"1234567", true},            // нижняя граница
		{"79001234567", true},
		{"123456789012345", true},    // верхняя граница
		{"1234567890123456", false},  // 16 цифр — длинный
		{"7900123456а", false},       // буква
		{"+79001234567", false},      // плюс не цифра
		{"7900 123456", false},       // пробел
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func userMessages(texts ...string) []model.Message {
	msgs := make([]model.Message, 0, len(texts))
	for _, text := range texts {
		msgs = append(msgs, model.Message{Role: model.RoleUser, Content: text})
	}
	return msgs
}

func TestFillExtractsAllFields(t *testing.T) {
	history := userMessages(
		"Хочу записаться на маникюр",
		"79001234567",
		"15 сентября",
		"к топ-стилисту",
		"Анна",
	)

	form := map[model.Field]string{}
	Fill(form, history)

	want := map[model.Field]string{
		model.FieldService: "Хочу записаться на маникюр",
		model.FieldPhone:   "79001234567",
		model.FieldDate:    "15 сентября",
		model.FieldMaster:  "к топ-стилисту",
		model.FieldName:    "Анна",
	}
	if !reflect.DeepEqual(form, want) {
		t.Errorf("Fill() = %v, want %v", form, want)
	}
}

func TestFillOrderIndependent(t *testing.T) {
	// Те же сообщения в другом порядке дают ту же анкету
	history := userMessages(
		"Анна",
		"к топ-стилисту",
		"79001234567",
		"15 сентября",
		"Хочу записаться на маникюр",
	)

	form := map[model.Field]string{}
	Fill(form, history)

	if form[model.FieldName] != "Анна" {
		t.Errorf("name = %q, want Анна", form[model.FieldName])
	}
	if form[model.FieldService] != "Хочу записаться на маникюр" {
		t.Errorf("service = %q", form[model.FieldService])
	}
	if form[model.FieldPhone] != "79001234567" {
		t.Errorf("phone = %q", form[model.FieldPhone])
	}
}

func TestServiceBeatsName(t *testing.T) {
	// Короткое сообщение без цифр, но с ключевым словом услуги —
	// это услуга, не имя
	form := map[model.Field]string{}
	Fill(form, userMessages("хочу стрижку"))

	if form[model.FieldService] != "хочу стрижку" {
		t.Errorf("service = %q, want the message", form[model.FieldService])
	}
	if form[model.FieldName] != "" {
		t.Errorf("name = %q, want empty", form[model.FieldName])
	}
}

func TestFillIsIdempotent(t *testing.T) {
	history := userMessages("Хочу маникюр", "79001234567", "Анна")

	form := map[model.Field]string{}
	Fill(form, history)
	first := map[model.Field]string{}
	for k, v := range form {
		first[k] = v
	}

	Fill(form, history)
	if !reflect.DeepEqual(form, first) {
		t.Errorf("second Fill changed the form: %v != %v", form, first)
	}
}

func TestFillDoesNotOverwrite(t *testing.T) {
	form := map[model.Field]string{model.FieldPhone: "79001111111"}
	Fill(form, userMessages("79002222222"))

	if form[model.FieldPhone] != "79001111111" {
		t.Errorf("phone overwritten: %q", form[model.FieldPhone])
	}
}

func TestOneFieldPerMessage(t *testing.T) {
	// "хочу 15 сентября" содержит и слово намерения, и месяц:
	// побеждает услуга, дата остаётся пустой
	form := map[model.Field]string{}
	Fill(form, userMessages("хочу 15 сентября"))

	if form[model.FieldService] != "хочу 15 сентября" {
		t.Errorf("service = %q", form[model.FieldService])
	}
	if form[model.FieldDate] != "" {
		t.Errorf("date = %q, want empty", form[model.FieldDate])
	}
}

func TestCommentNegation(t *testing.T) {
	// Имя уже есть, поэтому "нет" уходит в комментарий
	form := map[model.Field]string{model.FieldName: "Анна"}
	Fill(form, userMessages("нет"))

	if form[model.FieldComment] != "нет" {
		t.Errorf("comment = %q, want нет", form[model.FieldComment])
	}
}

func TestIgnoresAssistantMessages(t *testing.T) {
	history := []model.Message{
		{Role: model.RoleAssistant, Content: "Анна"},
	}
	form := map[model.Field]string{}
	Fill(form, history)

	if len(form) != 0 {
		t.Errorf("assistant message contributed fields: %v", form)
	}
}

func TestUnmatchedMessageContributesNothing(t *testing.T) {
	// Длинный текст с цифрой не подходит ни под одно правило
	form := map[model.Field]string{}
	Fill(form, userMessages("у меня вопрос про вашу акцию 2 по 1, расскажите пожалуйста подробнее про условия"))

	if len(form) != 0 {
		t.Errorf("expected empty form, got %v", form)
	}
}
