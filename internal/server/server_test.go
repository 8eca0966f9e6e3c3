package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type mockDialog struct {
	answer     string
	sessionIDs []string
	sources    []string
}

func (m *mockDialog) HandleMessage(_ context.Context, sessionID, _, source string) string {
	m.sessionIDs = append(m.sessionIDs, sessionID)
	m.sources = append(m.sources, source)
	return m.answer
}

func newTestServer(dialog *mockDialog) http.Handler {
	return New(dialog, "production", zap.NewNop()).Handler()
}

func postChat(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webchat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestChatReturnsAnswer(t *testing.T) {
	dialog := &mockDialog{answer: "Здравствуйте!"}
	handler := newTestServer(dialog)

	w := postChat(t, handler, `{"user_id":"abc","message":"привет"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Answer != "Здравствуйте!" {
		t.Errorf("answer = %q", resp.Answer)
	}

	// Идентификатор веб-сессии получает префикс канала, источник — Web
	if len(dialog.sessionIDs) != 1 || dialog.sessionIDs[0] != "web:abc" {
		t.Errorf("session ids = %v, want [web:abc]", dialog.sessionIDs)
	}
	if dialog.sources[0] != "Web" {
		t.Errorf("source = %q, want Web", dialog.sources[0])
	}
}

func TestChatRejectsMissingFields(t *testing.T) {
	handler := newTestServer(&mockDialog{})

	for _, body := range []string{
		`{"message":"привет"}`,
		`{"user_id":"abc"}`,
		`{}`,
		`не json`,
	} {
		w := postChat(t, handler, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
		var resp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Error == "" {
			t.Errorf("body %q: expected error JSON, got %s", body, w.Body.String())
		}
	}
}

func TestWidgetPageServed(t *testing.T) {
	handler := newTestServer(&mockDialog{})

	req := httptest.NewRequest(http.MethodGet, "/webchat", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, want text/html", ct)
	}
	if !strings.Contains(w.Body.String(), "chatMessages") {
		t.Error("widget markup missing from response")
	}
}
