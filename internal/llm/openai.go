package llm

import (
	"context"
	"github.com/sashabaranov/go-openai"
)

const (
	openAITemperature = 0.7
	openAIMaxTokens   = 2000
)

// ChatCompletionClient is the part of *openai.Client the adapter needs.
type ChatCompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIProvider struct {
	client ChatCompletionClient
}

// NewOpenAIProvider wraps a chat-completion client. A nil client leaves the
// provider unconfigured.
func NewOpenAIProvider(client ChatCompletionClient) *OpenAIProvider {
	return &OpenAIProvider{client: client}
}

func (p *OpenAIProvider) Kind() ProviderKind {
	return ProviderOpenAI
}

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (Message, error) {
	if p.client == nil {
		return Message{}, &UnconfiguredError{
			Provider: ProviderOpenAI,
			Message:  "OpenAI API key is not configured",
		}
	}

	res, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: openAITemperature,
		MaxTokens:   openAIMaxTokens,
	})
	if err != nil {
		return Message{}, err
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return Message{}, &NoResponseError{Provider: ProviderOpenAI}
	}
	return fromOpenAIMessage(res.Choices[0].Message), nil
}

// ------------------Private helper function------------------

// toOpenAIRole keeps assistant turns and collapses every other role to user.
func toOpenAIRole(role Role) string {
	if role == RoleAssistant {
		return openai.ChatMessageRoleAssistant
	}
	return openai.ChatMessageRoleUser
}

func toOpenAIMessage(msg Message) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role:    toOpenAIRole(msg.Role),
		Content: msg.Content,
	}
}

func fromOpenAIMessage(msg openai.ChatCompletionMessage) Message {
	return Message{
		Role:    RoleAssistant,
		Content: msg.Content,
	}
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		result[i] = toOpenAIMessage(msg)
	}
	return result
}
