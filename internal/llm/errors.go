package llm

import (
	"encoding/json"
	"errors"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// InvalidRequestError rejects a payload before any provider is contacted.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// UnconfiguredError means the provider's credential is absent, so no call was made.
type UnconfiguredError struct {
	Provider ProviderKind
	Message  string
}

func (e *UnconfiguredError) Error() string {
	return e.Message
}

// NoResponseError is returned when the upstream call succeeded but carried no text.
type NoResponseError struct {
	Provider ProviderKind
}

func (e *NoResponseError) Error() string {
	return "No response from " + e.Provider.DisplayName()
}

// UpstreamDetails returns the raw error payload carried by a provider error, or
// nil when the error has none.
func UpstreamDetails(err error) any {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		if gErr.Body == "" {
			return nil
		}
		if json.Valid([]byte(gErr.Body)) {
			return json.RawMessage(gErr.Body)
		}
		return gErr.Body
	}

	return nil
}
