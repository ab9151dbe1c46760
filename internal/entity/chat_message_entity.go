package entity

import (
	"time"

	"github.com/google/uuid"

	"procure-ai-be/pkg/procurement/supplier"
)

// ChatMessage is one turn of a procurement conversation. Suppliers carries
// the structured vendor cards attached to assistant replies, when any.
type ChatMessage struct {
	Id            uuid.UUID
	Chat          string
	Role          string
	Suppliers     []supplier.Match
	ChatSessionId uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
