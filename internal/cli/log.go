// Package cli implements the peermap command-line interface.
//
// The CLI reads AWS Config exports of VPC peering connections and renders
// them as an interactive HTML network, optionally alongside JSON, DOT and
// SVG renditions. It is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
//   - peermap: Generate the peering report (the root command)
//   - completion: Generate shell completion scripts
//
// # Logging
//
// Diagnostics go to stderr. --verbose (-v) switches to debug level. Loggers
// are passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// A progress is used by a single command run and is not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// Call done on the returned progress once the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Wrote 2 report files (84ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys set by the CLI. A private type keeps
// them from colliding with keys set by cobra or other packages.
type ctxKey int

// loggerKey is the context key under which the command logger is stored.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// Commands read it back with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default(), so a command run
// outside RootCommand still has a usable logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
