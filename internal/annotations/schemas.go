package annotations

import (
	"fmt"
	"unicode"
)

// Built-in annotation schemas

// InstrumentAnnotationSchema defines the schema for //tracewrap::instrument
// annotations
var InstrumentAnnotationSchema = AnnotationSchema{
	Type:        InstrumentAnnotation,
	Description: "Marks a struct type for tracing wrapper generation",
	Parameters: map[string]ParameterSpec{
		"Source": {
			Required:    false,
			Description: "Span source label, defaults to the type name",
			Validator:   validateSourceLabel,
		},
	},
	Examples: []string{
		"//tracewrap::instrument",
		"//tracewrap::instrument -Source=Billing",
		"//tracewrap::instrument -Source=\"billing.invoices\"",
	},
}

// validateSourceLabel checks that a span source label is usable as a tracer
// name: non-empty, no whitespace, no control characters.
func validateSourceLabel(value string) error {
	if value == "" {
		return fmt.Errorf("source label cannot be empty")
	}
	for _, r := range value {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("source label cannot contain whitespace or control characters, got %q", value)
		}
	}
	return nil
}

// RegisterBuiltinSchemas registers all built-in annotation schemas with the
// given registry
func RegisterBuiltinSchemas(registry AnnotationRegistry) error {
	schemas := []AnnotationSchema{
		InstrumentAnnotationSchema,
	}

	for _, schema := range schemas {
		if err := registry.Register(schema.Type, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Type.String(), err)
		}
	}

	return nil
}

// GetBuiltinSchemas returns all built-in annotation schemas
func GetBuiltinSchemas() []AnnotationSchema {
	return []AnnotationSchema{
		InstrumentAnnotationSchema,
	}
}
