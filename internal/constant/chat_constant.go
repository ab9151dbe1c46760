package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Session titles are derived from the first user message.
	SessionTitleMaxLength = 30
	SessionDefaultTitle   = "New Procurement"

	// Pub/sub topic for finished procurement plans.
	PlanCompletedTopicName = "PLAN_COMPLETED"
)
