package llm

import (
	"context"
	"errors"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type fakeGeminiChat struct {
	parts []genai.Part
	res   *genai.GenerateContentResponse
	err   error
}

func (f *fakeGeminiChat) SendMessage(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.parts = parts
	return f.res, f.err
}

type fakeGeminiClient struct {
	model   string
	history []*genai.Content
	chat    *fakeGeminiChat
	started int
}

func (f *fakeGeminiClient) StartChat(model string, history []*genai.Content) GeminiChat {
	f.started++
	f.model = model
	f.history = history
	return f.chat
}

func geminiReply(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: geminiRoleModel, Parts: parts}},
		},
	}
}

func TestGeminiProviderSplitsHistory(t *testing.T) {
	client := &fakeGeminiClient{chat: &fakeGeminiChat{res: geminiReply(genai.Text("sure"))}}
	provider := NewGeminiAIProvider(client)

	msg, err := provider.Complete(context.Background(), CompletionRequest{
		Model: "gemini-1.5-pro",
		Messages: []Message{
			{Role: RoleUser, Content: "m1"},
			{Role: RoleAssistant, Content: "m2"},
			{Role: RoleUser, Content: "m3"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "sure", msg.Content)
	assert.Equal(t, 1, client.started)
	assert.Equal(t, "gemini-1.5-pro", client.model)
	assert.Equal(t, []*genai.Content{
		{Role: "user", Parts: []genai.Part{genai.Text("m1")}},
		{Role: "model", Parts: []genai.Part{genai.Text("m2")}},
	}, client.history)
	assert.Equal(t, []genai.Part{genai.Text("m3")}, client.chat.parts)
}

func TestGeminiProviderSingleMessageHasEmptyHistory(t *testing.T) {
	client := &fakeGeminiClient{chat: &fakeGeminiChat{res: geminiReply(genai.Text("hello"))}}
	provider := NewGeminiAIProvider(client)

	_, err := provider.Complete(context.Background(), CompletionRequest{
		Model:    "gemini-2.0-flash-exp",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Empty(t, client.history)
	assert.Equal(t, []genai.Part{genai.Text("hi")}, client.chat.parts)
}

func TestToGeminiRole(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{role: RoleAssistant, want: "model"},
		{role: RoleUser, want: "user"},
		{role: "system", want: "user"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := toGeminiRole(tt.role); got != tt.want {
				t.Errorf("toGeminiRole(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestGeminiProviderJoinsTextParts(t *testing.T) {
	client := &fakeGeminiClient{chat: &fakeGeminiChat{
		res: geminiReply(genai.Text("foo "), genai.Blob{MIMEType: "image/png"}, genai.Text("bar")),
	}}

	msg, err := NewGeminiAIProvider(client).Complete(context.Background(), CompletionRequest{
		Model:    "gemini-1.5-pro",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "foo bar", msg.Content)
}

func TestGeminiProviderNoResponse(t *testing.T) {
	tests := []struct {
		name string
		res  *genai.GenerateContentResponse
	}{
		{name: "nil response", res: nil},
		{name: "no candidates", res: &genai.GenerateContentResponse{}},
		{name: "nil content", res: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{name: "empty text", res: geminiReply(genai.Text(""))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeGeminiClient{chat: &fakeGeminiChat{res: tt.res}}

			_, err := NewGeminiAIProvider(client).Complete(context.Background(), CompletionRequest{
				Model:    "gemini-1.5-pro",
				Messages: []Message{{Role: RoleUser, Content: "hi"}},
			})

			var noResp *NoResponseError
			require.ErrorAs(t, err, &noResp)
			assert.Equal(t, "No response from Gemini", err.Error())
		})
	}
}

func TestGeminiProviderUpstreamError(t *testing.T) {
	upstream := errors.New("quota exceeded")
	client := &fakeGeminiClient{chat: &fakeGeminiChat{err: upstream}}

	_, err := NewGeminiAIProvider(client).Complete(context.Background(), CompletionRequest{
		Model:    "gemini-1.5-pro",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, upstream)
}

func TestGeminiProviderUnconfigured(t *testing.T) {
	provider := NewGeminiAIProvider(NewGenaiClient(nil))

	_, err := provider.Complete(context.Background(), CompletionRequest{
		Model:    "gemini-1.5-pro",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})

	var unconfigured *UnconfiguredError
	require.ErrorAs(t, err, &unconfigured)
	assert.Equal(t, ProviderGemini, unconfigured.Provider)
	assert.Contains(t, unconfigured.Message, "GOOGLE_AI_API_KEY")
}
