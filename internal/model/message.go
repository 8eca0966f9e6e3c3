package model

// Role — автор сообщения в истории диалога
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message — одно сообщение в истории диалога
type Message struct {
	Role    Role
	Content string
}
