package llm

import (
	"context"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries the conversation, oldest first, and the concrete
// upstream model name chosen by routing.
type CompletionRequest struct {
	Messages []Message
	Model    string
}

// ProviderKind names one of the upstream text-generation services.
type ProviderKind string

const (
	ProviderOpenAI ProviderKind = "openai"
	ProviderGemini ProviderKind = "gemini"
)

// DisplayName is the name used in user-facing error messages.
func (p ProviderKind) DisplayName() string {
	switch p {
	case ProviderGemini:
		return "Gemini"
	default:
		return "OpenAI"
	}
}

// AIProvider produces one assistant reply from a conversation. Implementations
// make exactly one upstream call per Complete.
type AIProvider interface {
	Kind() ProviderKind
	Complete(ctx context.Context, req CompletionRequest) (Message, error)
}
