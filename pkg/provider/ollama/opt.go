package ollama

import (
	"time"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// GENERATION OPTIONS
//
// See: https://github.com/ollama/ollama/blob/main/docs/modelfile.md#valid-parameters-and-values

// WithSystemPrompt sets the system prompt for the request.
func WithSystemPrompt(value string) opt.Opt {
	return opt.SetString(opt.SystemPromptKey, value)
}

// WithTemperature sets the temperature for the request (0.0 to 2.0).
// Higher values produce more random output, lower values more deterministic.
func WithTemperature(value float64) opt.Opt {
	if value < 0 || value > 2 {
		return opt.Error(weather.ErrBadParameter.With("temperature must be between 0.0 and 2.0"))
	}
	return opt.SetFloat64(opt.TemperatureKey, value)
}

// WithTopP sets the nucleus sampling parameter (0.0 to 1.0).
func WithTopP(value float64) opt.Opt {
	if value < 0 || value > 1 {
		return opt.Error(weather.ErrBadParameter.With("top_p must be between 0.0 and 1.0"))
	}
	return opt.SetFloat64(opt.TopPKey, value)
}

// WithTopK limits sampling to the k most likely tokens (minimum 1).
func WithTopK(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(weather.ErrBadParameter.With("top_k must be at least 1"))
	}
	return opt.SetUint(opt.TopKKey, value)
}

// WithSeed sets the random seed for deterministic generation.
func WithSeed(value uint) opt.Opt {
	return opt.SetUint(opt.SeedKey, value)
}

// WithMaxTokens sets the maximum number of tokens to generate (minimum 1).
func WithMaxTokens(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(weather.ErrBadParameter.With("max_tokens must be at least 1"))
	}
	return opt.SetUint(opt.MaxTokensKey, value)
}

// WithKeepAlive sets how long the model stays loaded after the request.
// Zero unloads the model as soon as the response is complete.
func WithKeepAlive(value time.Duration) opt.Opt {
	return opt.SetDuration(opt.KeepAliveKey, value)
}
