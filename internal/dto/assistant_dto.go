// FILE: internal/dto/assistant_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssistantChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

type AssistantChatResponse struct {
	Reply string `json:"reply"`
}

type ChatMessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	Messages []ChatMessageDTO `json:"messages"`
}
