package state

import (
	"fmt"
	"testing"

	"github.com/artbeauty/intake-bot/internal/model"
)

func TestAppendKeepsSlidingWindow(t *testing.T) {
	m := NewManager(30)

	for i := 0; i < 35; i++ {
		m.Append("tg:1", model.Message{Role: model.RoleUser, Content: fmt.Sprintf("msg %d", i)})
	}

	history := m.History("tg:1")
	if len(history) != 30 {
		t.Fatalf("expected history of 30, got %d", len(history))
	}
	if history[0].Content != "msg 5" {
		t.Errorf("expected oldest message to be 'msg 5', got %q", history[0].Content)
	}
	if history[29].Content != "msg 34" {
		t.Errorf("expected newest message to be 'msg 34', got %q", history[29].Content)
	}
}

func TestSetFieldIfEmptyDoesNotOverwrite(t *testing.T) {
	m := NewManager(0)

	if !m.SetFieldIfEmpty("tg:1", model.FieldName, "Анна") {
		t.Fatal("expected first write to succeed")
	}
	if m.SetFieldIfEmpty("tg:1", model.FieldName, "Мария") {
		t.Fatal("expected second write to be rejected")
	}
	if got := m.Field("tg:1", model.FieldName); got != "Анна" {
		t.Errorf("expected field to keep first value, got %q", got)
	}
}

func TestSetFieldOverwrites(t *testing.T) {
	m := NewManager(0)

	m.SetField("tg:1", model.FieldPhone, "79001234567")
	m.SetField("tg:1", model.FieldPhone, "79007654321")

	if got := m.Field("tg:1", model.FieldPhone); got != "79007654321" {
		t.Errorf("expected overwritten value, got %q", got)
	}
}

func TestClearResetsHistoryAndFormOnly(t *testing.T) {
	m := NewManager(0)

	m.Append("tg:1", model.Message{Role: model.RoleUser, Content: "привет"})
	m.SetField("tg:1", model.FieldName, "Анна")
	m.SetStage("tg:1", StageChoosing)
	m.SetMode("tg:1", ModeGuided)

	m.Clear("tg:1")

	if len(m.History("tg:1")) != 0 {
		t.Error("expected history to be cleared")
	}
	if m.Field("tg:1", model.FieldName) != "" {
		t.Error("expected form to be cleared")
	}
	if m.Stage("tg:1") != StageChoosing {
		t.Error("expected stage to survive clear")
	}
	if m.Mode("tg:1") != ModeGuided {
		t.Error("expected mode to survive clear")
	}
}

func TestSessionsAreIsolatedByID(t *testing.T) {
	m := NewManager(0)

	m.SetField("tg:1", model.FieldName, "Анна")
	m.SetField("web:abc", model.FieldName, "Мария")

	if m.Field("tg:1", model.FieldName) != "Анна" {
		t.Error("telegram session affected by web session")
	}
	if m.Field("web:abc", model.FieldName) != "Мария" {
		t.Error("web session affected by telegram session")
	}
}

func TestFormSnapshotIsACopy(t *testing.T) {
	m := NewManager(0)
	m.SetField("tg:1", model.FieldName, "Анна")

	form := m.FormSnapshot("tg:1")
	form[model.FieldName] = "изменено"

	if m.Field("tg:1", model.FieldName) != "Анна" {
		t.Error("mutating snapshot must not affect the session")
	}
}
