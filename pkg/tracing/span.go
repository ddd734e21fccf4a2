package tracing

import (
	"go.opentelemetry.io/otel/trace"
)

// Span is one traced call in flight. A nil span is safe to tag and end, so
// generated code never has to branch.
type Span struct {
	otelSpan trace.Span
}

// SetTag records one argument of the traced call as a span attribute. The
// key is the parameter's declared name.
func (s *Span) SetTag(key string, value interface{}) {
	if s == nil || s.otelSpan == nil {
		return
	}
	s.otelSpan.SetAttributes(attributeFor(key, value))
}

// End closes the span
func (s *Span) End() {
	if s == nil || s.otelSpan == nil {
		return
	}
	s.otelSpan.End()
}
