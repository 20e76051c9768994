package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Event types published on the agent event topic.
	EventSectionSaved          = "AGENT_SECTION_SAVED"
	EventConversationFinished  = "AGENT_CONVERSATION_FINISHED"
	EventExportReady           = "AGENT_EXPORT_READY"
	EventConversationStarted   = "AGENT_CONVERSATION_STARTED"
	EventConversationAbandoned = "AGENT_CONVERSATION_ABANDONED"

	// Redis key prefix for the per-session turn lock. One turn at a time per
	// conversation; everything downstream assumes a single writer.
	TurnLockPrefix = "agent:turn_lock:"
)
