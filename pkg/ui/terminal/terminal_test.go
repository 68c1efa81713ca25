package terminal_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	// Packages
	terminal "github.com/mutablelogic/go-weather/pkg/ui/terminal"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func newTerminal(t *testing.T, input string) (*terminal.Terminal, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	term, err := terminal.New(strings.NewReader(input), out)
	require.NoError(t, err)
	return term, out
}

func Test_terminal_001(t *testing.T) {
	assert := assert.New(t)
	term, out := newTerminal(t, "temperature at 25.05, 70.50?\r\nquit\nlast")
	assert.False(term.IsTerminal())
	assert.Equal(80, term.Width())

	line, err := term.ReadLine("Ask the agent: ")
	assert.NoError(err)
	assert.Equal("temperature at 25.05, 70.50?", line)
	assert.Equal("Ask the agent: ", out.String())

	line, err = term.ReadLine("")
	assert.NoError(err)
	assert.Equal("quit", line)

	// A final line without a line ending is still returned
	line, err = term.ReadLine("")
	assert.NoError(err)
	assert.Equal("last", line)

	_, err = term.ReadLine("")
	assert.ErrorIs(err, io.EOF)
}

func Test_terminal_002(t *testing.T) {
	assert := assert.New(t)
	term, out := newTerminal(t, "")
	assert.NoError(term.Info("Reading the responses from the agent"))
	assert.NoError(term.Info("Done after %d tools", 2))
	assert.Equal("[== Info ==]: Reading the responses from the agent\n[== Info ==]: Done after 2 tools\n", out.String())
}

func Test_terminal_003(t *testing.T) {
	assert := assert.New(t)
	term, out := newTerminal(t, "")
	term.Stream("tool", `get_temperature {"latitude":25.05,"longitude":70.5}`)
	term.Stream("assistant", "It is ")
	term.Stream("assistant", "-3.3°C.")
	term.EndStream()
	assert.Equal("tool:\nget_temperature {\"latitude\":25.05,\"longitude\":70.5}\n\nassistant:\nIt is -3.3°C.\n", out.String())

	// A new turn starts with a label again
	out.Reset()
	term.Stream("assistant", "Hi")
	term.EndStream()
	assert.Equal("assistant:\nHi\n", out.String())
}

func Test_terminal_004(t *testing.T) {
	assert := assert.New(t)
	term, out := newTerminal(t, "")
	long := strings.Repeat("warm ", 40)
	assert.NoError(term.Reply(long))
	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		assert.LessOrEqual(len(line), term.Width())
	}

	out.Reset()
	assert.NoError(term.Error(errors.New("connection refused")))
	assert.Equal("error: connection refused\n", out.String())
	assert.NoError(term.Error(nil))
}
