package service

import (
	"context"
	"testing"

	"procure-ai-be/pkg/events"
)

type recordedEntry struct {
	module  string
	message string
	details map[string]interface{}
}

type recordingLogger struct {
	noopLogger
	entries []recordedEntry
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.entries = append(l.entries, recordedEntry{module: module, message: message, details: details})
}

func TestAuditServiceRecordsEventPayload(t *testing.T) {
	log := &recordingLogger{}
	svc := &auditService{log: log}

	event := events.NewUserLogin("user-1", "user@example.com", "google")
	if err := svc.recordEvent(context.Background(), event); err != nil {
		t.Fatalf("recordEvent: %v", err)
	}

	if len(log.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(log.entries))
	}
	entry := log.entries[0]
	if entry.module != "audit" || entry.message != events.TypeUserLogin {
		t.Errorf("entry = %s/%s, want audit/%s", entry.module, entry.message, events.TypeUserLogin)
	}
	if entry.details["user_id"] != "user-1" || entry.details["provider"] != "google" {
		t.Errorf("payload not carried into details: %v", entry.details)
	}
	if _, ok := entry.details["occurred_at"]; !ok {
		t.Errorf("details missing occurred_at: %v", entry.details)
	}
}

func TestAuditServiceStartWithoutSubscriber(t *testing.T) {
	svc := NewAuditService(nil, noopLogger{})

	if err := svc.Start(); err == nil {
		t.Error("expected an error when no subscriber is configured")
	}
}
