package types_test

import (
	"strings"
	"testing"

	// Packages
	types "github.com/mutablelogic/go-weather/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

func Test_identifier_001(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"get_temperature", true},
		{"_private", true},
		{"tool-2", true},
		{"", false},
		{"2tool", false},
		{"-tool", false},
		{"get temperature", false},
		{strings.Repeat("a", types.MaxIdentifierLen), true},
		{strings.Repeat("a", types.MaxIdentifierLen+1), false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, types.IsIdentifier(tt.in))
		})
	}
}
