// Package slogobs adapts log/slog to the observability.Observer capability.
package slogobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/canvasmith/canvasmith/providers/observability"
)

// Observer routes log and counter events through a structured slog.Logger.
type Observer struct {
	logger *slog.Logger

	mu       sync.Mutex
	counters map[string]*slogCounter
}

var _ observability.Observer = (*Observer)(nil)

// New creates a slog-backed observer. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Observer{
		logger:   logger,
		counters: make(map[string]*slogCounter),
	}
}

// Debug logs at DEBUG level with structured attributes.
func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs at INFO level with structured attributes.
func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs at WARN level with structured attributes.
func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs at ERROR level with structured attributes.
func (o *Observer) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.log(ctx, slog.LevelError, msg, attrs...)
}

func (o *Observer) log(ctx context.Context, level slog.Level, msg string, attrs ...observability.Attribute) {
	logAttrs := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	o.logger.LogAttrs(ctx, level, msg, logAttrs...)
}

// Counter returns a named counter. Multiple calls with the same name return
// the same instance, so callers can fetch it on every use without caching.
// Each Add emits a debug log entry with the delta and cumulative value.
func (o *Observer) Counter(name string) observability.Counter {
	o.mu.Lock()
	defer o.mu.Unlock()

	if counter, ok := o.counters[name]; ok {
		return counter
	}
	counter := &slogCounter{name: name, logger: o.logger}
	o.counters[name] = counter
	return counter
}

type slogCounter struct {
	name   string
	logger *slog.Logger

	mu    sync.Mutex
	value int64
}

// Add increments the counter and logs the updated total at DEBUG level.
func (c *slogCounter) Add(ctx context.Context, value int64, attrs ...observability.Attribute) {
	c.mu.Lock()
	c.value += value
	current := c.value
	c.mu.Unlock()

	logAttrs := []slog.Attr{
		slog.String("metric", c.name),
		slog.Int64("value", current),
		slog.Int64("delta", value),
	}
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "Counter", logAttrs...)
}
