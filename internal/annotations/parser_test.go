package annotations

import (
	"strings"
	"testing"
)

func TestIsAnnotation(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    bool
	}{
		{"bare instrument", "//tracewrap::instrument", true},
		{"with flag", "//tracewrap::instrument -Source=Billing", true},
		{"leading whitespace", "   //tracewrap::instrument", true},
		{"regular comment", "// just a comment", false},
		{"wrong marker", "//wire::bind", false},
		{"missing separator", "//tracewrap instrument", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAnnotation(tt.comment); got != tt.want {
				t.Errorf("IsAnnotation(%q) = %v, want %v", tt.comment, got, tt.want)
			}
		})
	}
}

func TestParseInstrumentAnnotation(t *testing.T) {
	parser := NewParser(DefaultRegistry())

	tests := []struct {
		name       string
		comment    string
		wantErr    bool
		errContain string
		wantSource string
	}{
		{
			name:    "bare instrument",
			comment: "//tracewrap::instrument",
		},
		{
			name:       "with source",
			comment:    "//tracewrap::instrument -Source=Billing",
			wantSource: "Billing",
		},
		{
			name:       "with quoted source",
			comment:    `//tracewrap::instrument -Source="billing_invoices"`,
			wantSource: "billing_invoices",
		},
		{
			name:    "leading whitespace",
			comment: "   //tracewrap::instrument",
		},
		{
			name:       "unknown directive",
			comment:    "//tracewrap::observe",
			wantErr:    true,
			errContain: "unknown annotation type",
		},
		{
			name:       "unknown parameter",
			comment:    "//tracewrap::instrument -Mode=Fast",
			wantErr:    true,
			errContain: "unknown parameter",
		},
		{
			name:       "flag without value",
			comment:    "//tracewrap::instrument -Source",
			wantErr:    true,
			errContain: "requires a value",
		},
		{
			name:       "source with whitespace",
			comment:    `//tracewrap::instrument -Source="two words"`,
			wantErr:    true,
			errContain: "validation failed",
		},
		{
			name:       "not an annotation",
			comment:    "// plain comment",
			wantErr:    true,
			errContain: "not a tracewrap annotation",
		},
		{
			name:       "missing directive",
			comment:    "//tracewrap::",
			wantErr:    true,
			errContain: "syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parser.Parse(tt.comment, SourceLocation{File: "service.go", Line: 10})

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %+v", tt.comment, parsed)
				}
				if tt.errContain != "" && !strings.Contains(err.Error(), tt.errContain) {
					t.Errorf("Parse(%q) error = %q, want substring %q", tt.comment, err.Error(), tt.errContain)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.comment, err)
			}
			if parsed.Type != InstrumentAnnotation {
				t.Errorf("Parse(%q) type = %v, want instrument", tt.comment, parsed.Type)
			}
			if got := parsed.GetString("Source"); got != tt.wantSource {
				t.Errorf("Parse(%q) Source = %q, want %q", tt.comment, got, tt.wantSource)
			}
			if parsed.Location.File != "service.go" || parsed.Location.Line != 10 {
				t.Errorf("Parse(%q) location = %+v, want service.go:10", tt.comment, parsed.Location)
			}
		})
	}
}

func TestParseErrorsCarryLocation(t *testing.T) {
	parser := NewParser(DefaultRegistry())
	loc := SourceLocation{File: "billing.go", Line: 42, Column: 1}

	_, err := parser.Parse("//tracewrap::observe", loc)
	if err == nil {
		t.Fatal("expected error for unknown directive")
	}

	syntaxErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if syntaxErr.Location() != loc {
		t.Errorf("error location = %+v, want %+v", syntaxErr.Location(), loc)
	}
	if syntaxErr.Suggestion() == "" {
		t.Error("expected a suggestion listing known directives")
	}
}

func TestGetStringDefault(t *testing.T) {
	parsed := &ParsedAnnotation{Parameters: map[string]string{"Source": "Billing"}}

	if got := parsed.GetString("Source"); got != "Billing" {
		t.Errorf("GetString(Source) = %q, want Billing", got)
	}
	if got := parsed.GetString("Missing", "fallback"); got != "fallback" {
		t.Errorf("GetString(Missing, fallback) = %q, want fallback", got)
	}
	if got := parsed.GetString("Missing"); got != "" {
		t.Errorf("GetString(Missing) = %q, want empty", got)
	}
}
