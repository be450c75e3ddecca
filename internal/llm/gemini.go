package llm

import (
	"context"
	"github.com/google/generative-ai-go/genai"
	"strings"
)

const geminiRoleModel = "model"

// GeminiChat is one chat session already seeded with history.
type GeminiChat interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiClient opens chat sessions on a given upstream model.
type GeminiClient interface {
	StartChat(model string, history []*genai.Content) GeminiChat
}

// NewGenaiClient adapts a *genai.Client to GeminiClient. A nil client yields nil.
func NewGenaiClient(client *genai.Client) GeminiClient {
	if client == nil {
		return nil
	}
	return &genaiClient{client: client}
}

type genaiClient struct {
	client *genai.Client
}

func (c *genaiClient) StartChat(model string, history []*genai.Content) GeminiChat {
	session := c.client.GenerativeModel(model).StartChat()
	session.History = history
	return session
}

type GeminiProvider struct {
	client GeminiClient
}

// NewGeminiAIProvider wraps a session client. A nil client leaves the provider
// unconfigured.
func NewGeminiAIProvider(client GeminiClient) *GeminiProvider {
	return &GeminiProvider{client: client}
}

func (p *GeminiProvider) Kind() ProviderKind {
	return ProviderGemini
}

func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (Message, error) {
	if p.client == nil {
		return Message{}, &UnconfiguredError{
			Provider: ProviderGemini,
			Message:  "Google AI API key is not configured. Please set GOOGLE_AI_API_KEY in your environment variables.",
		}
	}

	history, last, ok := SplitConversation(req.Messages)
	if !ok {
		return Message{}, &InvalidRequestError{Message: "Messages array is required"}
	}

	chat := p.client.StartChat(req.Model, toGeminiHistory(history))
	res, err := chat.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return Message{}, err
	}

	text := extractText(res)
	if text == "" {
		return Message{}, &NoResponseError{Provider: ProviderGemini}
	}
	return Message{Role: RoleAssistant, Content: text}, nil
}

// -----------------Private Helper Functions-----------------

func toGeminiRole(role Role) string {
	if role == RoleAssistant {
		return geminiRoleModel
	}
	return string(RoleUser)
}

func toGeminiHistory(messages []Message) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		history = append(history, &genai.Content{
			Role:  toGeminiRole(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return history
}

// extractText joins the text parts of the first candidate.
func extractText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 {
		return ""
	}
	content := res.Candidates[0].Content
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
