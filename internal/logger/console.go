// Package logger provides the leveled console logger used for status and
// warning output.
//
// Messages go to a writer (stderr in the CLI) so they never interleave with
// the interactive prompts and JSON echo on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	levelDebug int = iota
	levelInfo
	levelWarn
	levelError
)

// Console writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// Colour is enabled only for os.Stdout and os.Stderr when they are terminals.
type Console struct {
	writer      io.Writer
	level       int
	colorOutput bool
	mu          sync.Mutex
	now         func() time.Time
}

// New creates a Console logger. A nil writer discards every message.
// Unknown levels fall back to "info".
func New(w io.Writer, level string) *Console {
	return &Console{
		writer:      w,
		level:       parseLevel(level),
		colorOutput: isTerminal(w),
		now:         time.Now,
	}
}

// Discard returns a logger that drops all output.
func Discard() *Console {
	return New(nil, "error")
}

func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Debugf logs a debug message.
func (c *Console) Debugf(format string, args ...any) { c.log(levelDebug, format, args...) }

// Infof logs an informational message.
func (c *Console) Infof(format string, args ...any) { c.log(levelInfo, format, args...) }

// Warnf logs a warning.
func (c *Console) Warnf(format string, args ...any) { c.log(levelWarn, format, args...) }

// Errorf logs an error.
func (c *Console) Errorf(format string, args ...any) { c.log(levelError, format, args...) }

func (c *Console) log(level int, format string, args ...any) {
	if c == nil || c.writer == nil || level < c.level {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().Format("15:04:05")
	name := levelName(level)
	if c.colorOutput {
		name = levelColor(level).Sprint(name)
	}
	fmt.Fprintf(c.writer, "[%s] [%s] %s\n", ts, name, fmt.Sprintf(format, args...))
}

func levelName(level int) string {
	switch level {
	case levelDebug:
		return "DEBUG"
	case levelWarn:
		return "WARN"
	case levelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func levelColor(level int) *color.Color {
	switch level {
	case levelDebug:
		return color.New(color.FgCyan)
	case levelWarn:
		return color.New(color.FgYellow)
	case levelError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}
