// Package terminal is a line-oriented chat interface. It reads one line of
// user input at a time, streams model output as it arrives, and renders
// complete replies as Markdown when the output is a terminal.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	lipgloss "github.com/charmbracelet/lipgloss"
	wordwrap "github.com/muesli/reflow/wordwrap"
	termenv "github.com/muesli/termenv"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Terminal reads user input and writes model output
type Terminal struct {
	sync.Mutex
	in       *bufio.Reader
	out      io.Writer
	tty      bool
	width    int
	renderer *glamour.TermRenderer
	styles   styles
	role     string // role of the text currently streaming
}

type styles struct {
	prompt, info, user, assistant, tool, err, dim lipgloss.Style
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	InfoPrefix   = "[== Info ==]: "
	defaultWidth = 80
	minWidth     = 20
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a terminal which reads from r and writes to w. Markdown is
// rendered only when w is a terminal.
func New(r io.Reader, w io.Writer) (*Terminal, error) {
	self := &Terminal{
		in:    bufio.NewReader(r),
		out:   w,
		width: defaultWidth,
	}

	// Detect the terminal and its width
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		self.tty = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			self.width = max(width, minWidth)
		}
	}

	// Styles are rendered for the colour profile of w
	self.styles = newStyles(lipgloss.NewRenderer(w))

	// Markdown renderer, with a style for the background colour
	if self.tty {
		style := "dark"
		if !termenv.HasDarkBackground() {
			style = "light"
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(self.width-4),
		)
		if err != nil {
			return nil, err
		}
		self.renderer = renderer
	}

	// Return success
	return self, nil
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		prompt:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")), // cyan
		info:      r.NewStyle().Foreground(lipgloss.Color("11")),            // yellow
		user:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // blue
		assistant: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")), // green
		tool:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")), // magenta
		err:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),  // red
		dim:       r.NewStyle().Faint(true),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsTerminal returns true if output goes to a terminal
func (t *Terminal) IsTerminal() bool {
	return t.tty
}

// Width returns the output width in columns
func (t *Terminal) Width() int {
	return t.width
}

// ReadLine writes the prompt and returns the next line of input without
// the line ending. It returns io.EOF when input is exhausted.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.Lock()
	defer t.Unlock()
	if prompt != "" {
		if _, err := fmt.Fprint(t.out, t.styles.prompt.Render(prompt)); err != nil {
			return "", err
		}
	}
	line, err := t.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Info writes an operator line
func (t *Terminal) Info(format string, args ...any) error {
	t.Lock()
	defer t.Unlock()
	_, err := fmt.Fprintln(t.out, t.styles.info.Render(InfoPrefix)+fmt.Sprintf(format, args...))
	return err
}

// Error writes an error line
func (t *Terminal) Error(err error) error {
	if err == nil {
		return nil
	}
	t.Lock()
	defer t.Unlock()
	_, werr := fmt.Fprintln(t.out, t.styles.err.Render("error:"), err.Error())
	return werr
}

// Stream writes a chunk of streamed text. A label is written whenever the
// role changes, and tool feedback is dimmed. Call EndStream when the turn
// is complete.
func (t *Terminal) Stream(role, text string) {
	t.Lock()
	defer t.Unlock()
	if role != t.role {
		if t.role != "" {
			fmt.Fprintln(t.out)
		}
		fmt.Fprintln(t.out, t.styleRole(role))
		t.role = role
	}
	if role == "tool" {
		fmt.Fprintln(t.out, t.styles.dim.Render(text))
	} else {
		fmt.Fprint(t.out, text)
	}
}

// EndStream finishes any streamed text with a line ending
func (t *Terminal) EndStream() {
	t.Lock()
	defer t.Unlock()
	if t.role != "" && t.role != "tool" {
		fmt.Fprintln(t.out)
	}
	t.role = ""
}

// Reply writes a complete reply from the assistant, rendered as Markdown on
// a terminal and word-wrapped otherwise
func (t *Terminal) Reply(text string) error {
	t.Lock()
	defer t.Unlock()
	_, err := fmt.Fprintln(t.out, t.render(text))
	return err
}

// Write writes raw bytes to the output
func (t *Terminal) Write(data []byte) (int, error) {
	t.Lock()
	defer t.Unlock()
	return t.out.Write(data)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (t *Terminal) render(text string) string {
	if t.renderer != nil {
		if out, err := t.renderer.Render(text); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return wordwrap.String(strings.TrimSpace(text), t.width)
}

func (t *Terminal) styleRole(role string) string {
	switch role {
	case "user":
		return t.styles.user.Render(role + ":")
	case "assistant":
		return t.styles.assistant.Render(role + ":")
	case "tool":
		return t.styles.tool.Render(role + ":")
	default:
		return t.styles.dim.Render(role + ":")
	}
}
