package chatbot

import (
	"CSChat/be/internal/llm"
	"context"
	"fmt"
)

// ChatService dispatches a validated conversation to the provider chosen by Route.
type ChatService struct {
	providers map[llm.ProviderKind]llm.AIProvider
}

// NewChatService creates a new instance of ChatService. Providers are keyed by
// their Kind; a later provider of the same kind replaces an earlier one.
func NewChatService(providers ...llm.AIProvider) *ChatService {
	byKind := make(map[llm.ProviderKind]llm.AIProvider, len(providers))
	for _, p := range providers {
		if p != nil {
			byKind[p.Kind()] = p
		}
	}
	return &ChatService{providers: byKind}
}

// Complete issues exactly one upstream call and returns the reply text.
func (cs *ChatService) Complete(ctx context.Context, req *ChatRequest) (string, error) {
	selection := Route(req.Model)

	provider, ok := cs.providers[selection.Provider]
	if !ok {
		return "", &llm.UnconfiguredError{
			Provider: selection.Provider,
			Message:  fmt.Sprintf("%s provider is not configured", selection.Provider.DisplayName()),
		}
	}

	reply, err := provider.Complete(ctx, llm.CompletionRequest{
		Messages: req.Messages,
		Model:    selection.UpstreamModel,
	})
	if err != nil {
		return "", err
	}
	return reply.Content, nil
}
