package chatbot

import (
	"CSChat/be/internal/llm"
	"bytes"
	"encoding/json"
)

const errMessagesRequired = "Messages array is required"

// wireMessage accepts any JSON value as role; only the string "assistant"
// survives as an assistant turn downstream.
type wireMessage struct {
	Role    json.RawMessage `json:"role"`
	Content string          `json:"content"`
}

// ParseChatRequest validates a raw JSON body. It either returns a complete
// request or an *llm.InvalidRequestError; nothing is partially accepted.
func ParseChatRequest(body []byte) (*ChatRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, invalid(errMessagesRequired)
	}

	messages, err := parseMessages(raw["messages"])
	if err != nil {
		return nil, err
	}

	return &ChatRequest{Messages: messages, Model: parseModel(raw["model"])}, nil
}

func parseMessages(raw json.RawMessage) ([]llm.Message, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, invalid(errMessagesRequired)
	}

	var items []*wireMessage
	if err := json.Unmarshal(trimmed, &items); err != nil || len(items) == 0 {
		return nil, invalid(errMessagesRequired)
	}

	messages := make([]llm.Message, len(items))
	for i, item := range items {
		if item == nil {
			return nil, invalid(errMessagesRequired)
		}
		messages[i] = llm.Message{Role: parseRole(item.Role), Content: item.Content}
	}
	return messages, nil
}

// parseRole keeps string roles as sent and maps any other value to user.
func parseRole(raw json.RawMessage) llm.Role {
	var role string
	if err := json.Unmarshal(raw, &role); err != nil {
		return llm.RoleUser
	}
	return llm.Role(role)
}

// parseModel treats an absent or null model as the default. A non-string
// model keeps its raw JSON text, which no routing entry matches.
func parseModel(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return DefaultModel
	}

	var model string
	if err := json.Unmarshal(trimmed, &model); err != nil {
		return string(trimmed)
	}
	return model
}

func invalid(message string) error {
	return &llm.InvalidRequestError{Message: message}
}
