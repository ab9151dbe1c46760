package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"procure-ai-be/internal/constant"
	"procure-ai-be/internal/dto"
	"procure-ai-be/internal/entity"
	"procure-ai-be/internal/repository/memory"
	"procure-ai-be/pkg/procurement/conversation"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty falls back to default", "", constant.SessionDefaultTitle},
		{"whitespace falls back to default", "   ", constant.SessionDefaultTitle},
		{"short message kept as-is", "Need 50 chairs", "Need 50 chairs"},
		{"long message truncated", "I need fifty ergonomic office chairs for the new Mumbai office", "I need fifty ergonomic office..."},
		{"multi-byte characters truncated on rune boundary", strings.Repeat("₹", 40), strings.Repeat("₹", 30) + "..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := deriveTitle(tc.input); got != tc.expected {
				t.Errorf("deriveTitle(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestLoadStatePrefersCacheThenSnapshot(t *testing.T) {
	states := memory.NewStateRepository()
	svc := &chatService{states: states, log: noopLogger{}}

	sessionID := uuid.New()
	cached := conversation.NewState()
	cached.Stage = conversation.StageTimeline
	cached.ProductType = "laptops"
	states.Save(sessionID.String(), cached)

	session := &entity.ChatSession{Id: sessionID}
	if got := svc.loadState(session); got.Stage != conversation.StageTimeline || got.ProductType != "laptops" {
		t.Errorf("expected cached state, got stage %q product %q", got.Stage, got.ProductType)
	}

	// Cache miss falls back to the persisted snapshot.
	snapshotted := conversation.NewState()
	snapshotted.Stage = conversation.StageAskingBudget
	snapshot, err := json.Marshal(snapshotted)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	other := &entity.ChatSession{Id: uuid.New(), State: snapshot}
	if got := svc.loadState(other); got.Stage != conversation.StageAskingBudget {
		t.Errorf("expected snapshot stage %q, got %q", conversation.StageAskingBudget, got.Stage)
	}

	// Corrupt snapshot degrades to a fresh conversation.
	corrupt := &entity.ChatSession{Id: uuid.New(), State: []byte("{not json")}
	if got := svc.loadState(corrupt); got.Stage != conversation.StageInitial {
		t.Errorf("expected fresh state for corrupt snapshot, got stage %q", got.Stage)
	}
}

func TestDispatchEffectsPublishesCompletedPlan(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, constant.PlanCompletedTopicName)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	svc := &chatService{
		publisher: pubSub,
		topicName: constant.PlanCompletedTopicName,
		log:       noopLogger{},
	}

	userID := uuid.New()
	sessionID := uuid.New()
	plan := &conversation.PlanSummary{
		ProductType: "office chairs",
		Quantity:    50,
		Method:      "Open Tender",
	}
	svc.dispatchEffects(userID, sessionID, []conversation.Effect{
		{Type: conversation.EffectPlanCompleted, Plan: plan},
	})

	select {
	case msg := <-messages:
		var payload dto.PlanCompletedMessage
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		msg.Ack()
		if payload.UserId != userID {
			t.Errorf("expected user %s, got %s", userID, payload.UserId)
		}
		if payload.ChatSessionId != sessionID {
			t.Errorf("expected session %s, got %s", sessionID, payload.ChatSessionId)
		}
		if payload.Plan.ProductType != "office chairs" || payload.Plan.Method != "Open Tender" {
			t.Errorf("unexpected plan payload: %+v", payload.Plan)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for published plan")
	}
}

func TestDispatchEffectsSkipsNilPlan(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	svc := &chatService{
		publisher: pubSub,
		topicName: constant.PlanCompletedTopicName,
		log:       noopLogger{},
	}

	// Must not panic or publish anything without a plan attached.
	svc.dispatchEffects(uuid.New(), uuid.New(), []conversation.Effect{
		{Type: conversation.EffectPlanCompleted},
		{Type: conversation.EffectSessionReset},
	})
}
