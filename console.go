package rowan

import (
	"fmt"
	"io"
	"os"
)

// Level classifies console messages.
type Level uint8

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is one console entry. A message identical to the previous entry of
// the same level is collapsed into it by bumping Repeat instead of appending.
type Message struct {
	Level  Level
	Text   string
	Repeat int
}

// String renders the message with its repeat count prefix, e.g. "(3x) oops".
func (m Message) String() string {
	if m.Repeat > 1 {
		return fmt.Sprintf("(%dx) %s", m.Repeat, m.Text)
	}
	return m.Text
}

// maxConsoleMessages caps the retained message history.
const maxConsoleMessages = 300

// Console is the capped in-engine message log. Everything written to it is
// also mirrored to an output writer (stderr by default) with a "[rowan]"
// prefix. Not safe for concurrent use; all writes happen on the frame
// goroutine.
type Console struct {
	msgs []Message
	out  io.Writer
}

// NewConsole creates a console mirroring to stderr.
func NewConsole() *Console {
	return &Console{out: os.Stderr}
}

// SetOutput redirects the mirror writer. Pass io.Discard to silence it.
func (c *Console) SetOutput(w io.Writer) {
	c.out = w
}

// Infof logs an informational message.
func (c *Console) Infof(format string, args ...any) {
	c.add(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a warning.
func (c *Console) Warnf(format string, args ...any) {
	c.add(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf logs an error.
func (c *Console) Errorf(format string, args ...any) {
	c.add(LevelError, fmt.Sprintf(format, args...))
}

func (c *Console) add(level Level, text string) {
	if n := len(c.msgs); n > 0 {
		last := &c.msgs[n-1]
		if last.Level == level && last.Text == text {
			last.Repeat++
			return
		}
	}
	c.msgs = append(c.msgs, Message{Level: level, Text: text, Repeat: 1})
	if len(c.msgs) > maxConsoleMessages {
		c.msgs = c.msgs[len(c.msgs)-maxConsoleMessages:]
	}

	if c.out == nil {
		return
	}
	switch level {
	case LevelWarn:
		_, _ = fmt.Fprintf(c.out, "[rowan] warning: %s\n", text)
	case LevelError:
		_, _ = fmt.Fprintf(c.out, "[rowan] error: %s\n", text)
	default:
		_, _ = fmt.Fprintf(c.out, "[rowan] %s\n", text)
	}
}

// Messages returns a copy of the retained history, oldest first.
func (c *Console) Messages() []Message {
	out := make([]Message, len(c.msgs))
	copy(out, c.msgs)
	return out
}

// Last returns the most recent message and whether one exists.
func (c *Console) Last() (Message, bool) {
	if len(c.msgs) == 0 {
		return Message{}, false
	}
	return c.msgs[len(c.msgs)-1], true
}
