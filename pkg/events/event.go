package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by the typed constructors
// below and by the subscriber when reconstructing events off the wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes used across the system.
const (
	TypeUserRegistered = "USER_REGISTERED"
	TypeUserLogin      = "USER_LOGIN"
	TypePlanCompleted  = "PLAN_COMPLETED"
)

// NewUserRegistered is emitted after a successful account creation.
func NewUserRegistered(userID, email string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": userID,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

// NewUserLogin is emitted after a successful login (password or Google).
func NewUserLogin(userID, email, provider string) Event {
	return BaseEvent{
		Type: TypeUserLogin,
		Data: map[string]interface{}{
			"user_id":  userID,
			"email":    email,
			"provider": provider,
		},
		OccurredAt: time.Now(),
	}
}

// NewPlanCompleted is emitted when a conversation confirms a supplier and
// produces a finished procurement plan.
func NewPlanCompleted(userID, sessionID string, plan map[string]interface{}) Event {
	return BaseEvent{
		Type: TypePlanCompleted,
		Data: map[string]interface{}{
			"user_id":    userID,
			"session_id": sessionID,
			"plan":       plan,
		},
		OccurredAt: time.Now(),
	}
}
