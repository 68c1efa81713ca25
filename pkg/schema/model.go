package schema

import (
	"time"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Represents a model served by a provider
type Model struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Created     time.Time      `json:"created,omitzero"`
	OwnedBy     string         `json:"owned_by,omitempty"`
	Aliases     []string       `json:"aliases,omitzero"`
	Meta        map[string]any `json:"meta,omitzero"`
}

// Usage reports the token counts for a single generation
type Usage struct {
	InputTokens  uint `json:"input_tokens"`
	OutputTokens uint `json:"output_tokens"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Total returns the sum of input and output tokens
func (u *Usage) Total() uint {
	if u == nil {
		return 0
	}
	return u.InputTokens + u.OutputTokens
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return types.Stringify(m)
}

func (u Usage) String() string {
	return types.Stringify(u)
}
