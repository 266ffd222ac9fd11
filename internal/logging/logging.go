// Package logging builds the charm loggers used across the arcade and the
// on-screen console they can write into.
package logging

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the named level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info.
func New(w io.Writer, level, prefix string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          prefix,
		Level:           lvl,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Console is an io.Writer that keeps the last N lines written to it, so log
// output can be drawn under the game display. Safe for concurrent use.
type Console struct {
	mu      sync.Mutex
	lines   []string
	max     int
	partial strings.Builder
}

// NewConsole creates a console holding at most max lines.
func NewConsole(max int) *Console {
	if max < 1 {
		max = 1
	}
	return &Console{max: max}
}

// Write implements io.Writer.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range string(p) {
		if r == '\n' {
			c.push(c.partial.String())
			c.partial.Reset()
			continue
		}
		c.partial.WriteRune(r)
	}
	return len(p), nil
}

func (c *Console) push(line string) {
	c.lines = append(c.lines, line)
	if over := len(c.lines) - c.max; over > 0 {
		c.lines = append(c.lines[:0], c.lines[over:]...)
	}
}

// Lines returns a copy of the retained lines, oldest first.
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Reset drops every retained line.
func (c *Console) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = c.lines[:0]
	c.partial.Reset()
}
