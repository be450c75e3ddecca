package chatbot

import (
	"CSChat/be/internal/llm"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ProviderSelection is the provider and concrete upstream model for a request.
type ProviderSelection struct {
	Provider      llm.ProviderKind
	UpstreamModel string
}

var defaultSelection = ProviderSelection{Provider: llm.ProviderOpenAI, UpstreamModel: "gpt-4"}

// routingTable is built once and only read afterwards.
var routingTable = newRoutingTable()

func newRoutingTable() *orderedmap.OrderedMap[string, ProviderSelection] {
	table := orderedmap.New[string, ProviderSelection]()
	table.Set("gemini-2.5-pro", ProviderSelection{Provider: llm.ProviderGemini, UpstreamModel: "gemini-2.0-flash-exp"})
	table.Set("gemini-1.5-pro", ProviderSelection{Provider: llm.ProviderGemini, UpstreamModel: "gemini-1.5-pro"})
	table.Set("gpt-4", ProviderSelection{Provider: llm.ProviderOpenAI, UpstreamModel: "gpt-4"})
	// No Anthropic adapter exists; claude-3 is served by an OpenAI stand-in.
	table.Set("claude-3", ProviderSelection{Provider: llm.ProviderOpenAI, UpstreamModel: "gpt-4-turbo-preview"})
	return table
}

// Route maps any model id to a provider. Unknown ids get the default selection.
func Route(model string) ProviderSelection {
	if selection, ok := routingTable.Get(model); ok {
		return selection
	}
	return defaultSelection
}

// Models lists the routing table in declaration order.
func Models() []ModelInfo {
	models := make([]ModelInfo, 0, routingTable.Len())
	for pair := routingTable.Oldest(); pair != nil; pair = pair.Next() {
		models = append(models, ModelInfo{
			ID:            pair.Key,
			Provider:      pair.Value.Provider,
			UpstreamModel: pair.Value.UpstreamModel,
			Default:       pair.Key == DefaultModel,
		})
	}
	return models
}
