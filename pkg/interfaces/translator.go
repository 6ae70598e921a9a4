package interfaces

import "context"

// TranslateRequest carries the recipe text handed to an external translation
// provider together with the target language display name (e.g. "Spanish").
// The runtime never inspects translated content; providers are treated as
// opaque text producers.
type TranslateRequest struct {
	// Text is the full recipe rendered as markdown, measurements already
	// converted to metric.
	Text string
	// Language is the human readable target language name.
	Language string
	// SystemPrompt optionally overrides the provider's system prompt.
	SystemPrompt string
	// Model optionally overrides the provider's default model.
	Model string
}

// Translator is implemented by external LLM-backed translation providers.
type Translator interface {
	// Translate returns the translated recipe text. Implementations must be
	// safe for concurrent use.
	Translate(ctx context.Context, req TranslateRequest) (string, error)
	// Ping verifies connectivity and credentials with the upstream API.
	Ping(ctx context.Context) error
}
