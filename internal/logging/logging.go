// Package logging builds the slog.Logger used by the hroute command and
// formats zerr error chains for terminal output.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the handler and minimum level.
type Options struct {
	Level  string
	JSON   bool
	Writer io.Writer
}

// New builds a logger. A nil Writer logs to os.Stderr.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, ho)
	} else {
		handler = slog.NewTextHandler(w, ho)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// messager matches zerr.Error, which reports its own message without the chain.
type messager interface {
	Message() string
}

// Chain splits err into one message per link. zerr links contribute their own
// message; the first plain error contributes its full text and ends the chain.
func Chain(err error) []string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}

	return messages
}

// Format renders err as an "Error:" line followed by its causes.
func Format(err error) string {
	msgs := Chain(err)
	if len(msgs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(msgs[0])
	if len(msgs) > 1 {
		b.WriteString("\n\n  Caused by:")
		for _, m := range msgs[1:] {
			b.WriteString("\n    -> ")
			b.WriteString(m)
		}
	}

	return b.String()
}
