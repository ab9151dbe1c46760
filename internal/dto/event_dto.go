package dto

import (
	"github.com/google/uuid"

	"procure-ai-be/pkg/procurement/conversation"
)

// PlanCompletedMessage is the payload published when a conversation
// confirms a supplier. Consumed in the background for email + events.
type PlanCompletedMessage struct {
	UserId        uuid.UUID                `json:"user_id"`
	ChatSessionId uuid.UUID                `json:"chat_session_id"`
	Plan          conversation.PlanSummary `json:"plan"`
}
