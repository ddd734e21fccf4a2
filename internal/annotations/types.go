package annotations

import "fmt"

// AnnotationType represents the type of annotation
type AnnotationType int

const (
	InstrumentAnnotation AnnotationType = iota
)

// String returns the string representation of the annotation type
func (a AnnotationType) String() string {
	switch a {
	case InstrumentAnnotation:
		return "instrument"
	default:
		return "unknown"
	}
}

// ParseAnnotationType converts string to AnnotationType
func ParseAnnotationType(s string) (AnnotationType, error) {
	switch s {
	case "instrument":
		return InstrumentAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation type: %s", s)
	}
}

// SourceLocation represents the location of an annotation in source code
type SourceLocation struct {
	File   string // File path
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// ParsedAnnotation represents a fully parsed annotation
type ParsedAnnotation struct {
	Type       AnnotationType    // Annotation type enum
	Target     string            // Target type name, filled in during discovery
	Parameters map[string]string // Named parameter values
	Location   SourceLocation    // Source location
	Raw        string            // Original annotation text
}

// GetString returns a parameter value with optional default
func (p *ParsedAnnotation) GetString(paramName string, defaultValue ...string) string {
	if value, exists := p.Parameters[paramName]; exists {
		return value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// HasParameter checks if a parameter exists
func (p *ParsedAnnotation) HasParameter(paramName string) bool {
	_, exists := p.Parameters[paramName]
	return exists
}

// ParameterSpec defines the specification for an annotation parameter
type ParameterSpec struct {
	Required     bool               // Whether parameter is required
	DefaultValue string             // Value used when the flag is given without one
	Description  string             // Parameter description
	Validator    func(string) error // Custom validator function
}

// CustomValidator represents a whole-annotation validation function
type CustomValidator func(*ParsedAnnotation) error

// AnnotationSchema defines the schema for an annotation type
type AnnotationSchema struct {
	Type        AnnotationType           // Annotation type enum
	Description string                   // Human-readable description
	Parameters  map[string]ParameterSpec // Parameter specifications
	Validators  []CustomValidator        // Custom validation functions
	Examples    []string                 // Usage examples
}
