package tracing

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	providerMu sync.RWMutex
	provider   trace.TracerProvider
)

// SetProvider installs the tracer provider behind every span source. Spans
// resolve their tracer at start time, so wrappers constructed before
// SetProvider pick up the new provider on their next call. Passing nil
// falls back to the OpenTelemetry global provider.
func SetProvider(tp trace.TracerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = tp
}

// activeProvider returns the installed provider, or the OpenTelemetry
// global one when none was installed.
func activeProvider() trace.TracerProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()

	if provider != nil {
		return provider
	}
	return otel.GetTracerProvider()
}
