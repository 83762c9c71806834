// FILE: internal/entity/chat_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}
