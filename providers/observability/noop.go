package observability

import "context"

// Noop returns an Observer that discards all events. It is the default
// capability when callers inject nothing.
func Noop() Observer {
	return noopObserver{}
}

type noopObserver struct{}

func (noopObserver) Debug(context.Context, string, ...Attribute) {}
func (noopObserver) Info(context.Context, string, ...Attribute)  {}
func (noopObserver) Warn(context.Context, string, ...Attribute)  {}
func (noopObserver) Error(context.Context, string, ...Attribute) {}

func (noopObserver) Counter(string) Counter { return noopCounter{} }

type noopCounter struct{}

func (noopCounter) Add(context.Context, int64, ...Attribute) {}
