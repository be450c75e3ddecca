package chatbot

import "CSChat/be/internal/llm"

// DefaultModel is used when the request does not name a model.
const DefaultModel = "gpt-4"

// ChatRequest is the validated inbound conversation.
type ChatRequest struct {
	Messages []llm.Message `json:"messages" jsonschema:"minItems=1,description=Conversation turns oldest first; the last one is the new prompt"`
	Model    string        `json:"model,omitempty" jsonschema:"default=gpt-4,description=Requested model id; unknown ids fall back to the default"`
}

type ChatResponse struct {
	Message string `json:"message"`
}

// ModelInfo describes one entry of the routing table.
type ModelInfo struct {
	ID            string           `json:"id"`
	Provider      llm.ProviderKind `json:"provider"`
	UpstreamModel string           `json:"upstreamModel"`
	Default       bool             `json:"default,omitempty"`
}

type ModelsResponse struct {
	Default string      `json:"default"`
	Models  []ModelInfo `json:"models"`
}
