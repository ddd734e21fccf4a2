package tracing

import (
	"context"
	"sync"
)

// SpanSource produces the spans for one instrumented type. The source label
// becomes the instrumentation scope name, so every span started through the
// source is attributed to the type it wraps.
type SpanSource struct {
	name string
}

var (
	sourcesMu sync.Mutex
	sources   = make(map[string]*SpanSource)
)

// SourceFor returns the span source for the given label, creating it on
// first use. Generated wrapper constructors call this with the type's
// source label.
func SourceFor(name string) *SpanSource {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()

	if source, exists := sources[name]; exists {
		return source
	}

	source := &SpanSource{name: name}
	sources[name] = source
	return source
}

// Name returns the source label
func (s *SpanSource) Name() string {
	return s.name
}

// Start opens a span for one forwarded call. The operation is the method
// name; generated wrappers close the span with defer.
func (s *SpanSource) Start(operation string) *Span {
	if s == nil {
		return nil
	}

	tracer := activeProvider().Tracer(s.name)
	_, otelSpan := tracer.Start(context.Background(), operation)
	return &Span{otelSpan: otelSpan}
}
