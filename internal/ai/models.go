package ai

// Default generation parameters; chosen to keep section structure stable
// while leaving the model room for destination-specific detail.
const (
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOpenAIModel = "gpt-4"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 3000
)

// Request carries one completion call to a provider.
type Request struct {
	// System is the role instruction sent alongside the prompt.
	System string

	// Prompt is the user-facing request text.
	Prompt string

	// Model overrides the provider's default model when non-empty.
	Model string

	// Temperature in [0,2]; zero value falls back to DefaultTemperature.
	Temperature float32

	// MaxTokens caps the reply length; zero falls back to DefaultMaxTokens.
	MaxTokens int32
}

// temperature returns the effective sampling temperature.
func (r Request) temperature() float32 {
	if r.Temperature == 0 {
		return DefaultTemperature
	}
	return r.Temperature
}

// maxTokens returns the effective output cap.
func (r Request) maxTokens() int32 {
	if r.MaxTokens == 0 {
		return DefaultMaxTokens
	}
	return r.MaxTokens
}
