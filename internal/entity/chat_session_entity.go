package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChatSession is one procurement conversation. State holds the serialized
// conversation snapshot so a session survives restarts.
type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	State     json.RawMessage
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
