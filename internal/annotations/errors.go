package annotations

import "fmt"

// SyntaxError represents an annotation that could not be parsed
type SyntaxError struct {
	Msg  string         // Error message
	Loc  SourceLocation // Where the error occurred
	Hint string         // Suggested fix
}

func (e *SyntaxError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s:%d: syntax error: %s", e.Loc.File, e.Loc.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: syntax error: %s. %s", e.Loc.File, e.Loc.Line, e.Msg, e.Hint)
}

// Location returns where the error occurred
func (e *SyntaxError) Location() SourceLocation { return e.Loc }

// Suggestion returns the suggested fix
func (e *SyntaxError) Suggestion() string { return e.Hint }

// ValidationError represents a parameter that failed schema validation
type ValidationError struct {
	Parameter string         // Parameter name that failed validation
	Reason    string         // Why validation failed
	Loc       SourceLocation // Where the error occurred
	Hint      string         // Suggested fix
}

func (e *ValidationError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s:%d: parameter '%s' validation failed: %s",
			e.Loc.File, e.Loc.Line, e.Parameter, e.Reason)
	}
	return fmt.Sprintf("%s:%d: parameter '%s' validation failed: %s. %s",
		e.Loc.File, e.Loc.Line, e.Parameter, e.Reason, e.Hint)
}

// Location returns where the error occurred
func (e *ValidationError) Location() SourceLocation { return e.Loc }

// Suggestion returns the suggested fix
func (e *ValidationError) Suggestion() string { return e.Hint }
