package table_test

import (
	"testing"
	"time"

	// Packages
	table "github.com/mutablelogic/go-weather/pkg/ui/table"
	assert "github.com/stretchr/testify/assert"
)

type models []string

func (m models) Header() []string { return []string{"NAME", "TOOLS"} }
func (m models) Len() int         { return len(m) }
func (m models) Row(i int) []any {
	if m[i] == "" {
		return nil
	}
	return []any{m[i], i == 0}
}

func Test_table_001(t *testing.T) {
	assert := assert.New(t)
	data := models{"llama3.2:latest", "", "qwen3:8b"}
	assert.Equal("NAME\tTOOLS\nllama3.2:latest\tyes\nqwen3:8b\tno", table.RenderText(data))

	rendered := table.Render(data, 0)
	assert.Contains(rendered, "llama3.2:latest")
	assert.Contains(rendered, "qwen3:8b")
	assert.Contains(rendered, "NAME")
}

func Test_table_002(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, "-"},
		{"", "-"},
		{"x", "x"},
		{0, "-"},
		{3, "3"},
		{uint(0), "-"},
		{-3.3, "-3.3"},
		{true, "yes"},
		{[]string{"completion", "tools"}, "completion, tools"},
		{time.Time{}, "-"},
		{time.Date(2024, 10, 1, 10, 0, 0, 0, time.UTC), "2024-10-01 10:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.FormatCell(tt.value))
	}
	assert.Equal(t, "abc…", table.Truncate("abcdef", 4))
	assert.Equal(t, "a b", table.Truncate("a\nb", 10))
}
