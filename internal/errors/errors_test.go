package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestSourceLocationString(t *testing.T) {
	tests := []struct {
		name string
		loc  SourceLocation
		want string
	}{
		{"empty", SourceLocation{}, "unknown location"},
		{"file only", SourceLocation{File: "billing.go"}, "billing.go"},
		{"file and line", SourceLocation{File: "billing.go", Line: 12}, "billing.go:12"},
		{"file line column", SourceLocation{File: "billing.go", Line: 12, Column: 3}, "billing.go:12:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseErrorError(t *testing.T) {
	cause := stderrors.New("file vanished")

	tests := []struct {
		name string
		err  *BaseError
		want string
	}{
		{
			name: "message only",
			err:  New(ParseErrorCode, "failed to parse package"),
			want: "failed to parse package",
		},
		{
			name: "with cause",
			err:  Wrap(FileSystemErrorCode, "failed to read directory", cause),
			want: "failed to read directory: file vanished",
		},
		{
			name: "with location",
			err:  New(ValidationErrorCode, "marker on a function").WithLocation(SourceLocation{File: "jobs.go", Line: 4}),
			want: "jobs.go:4: marker on a function",
		},
		{
			name: "with location and cause",
			err: Wrap(ParseErrorCode, "failed to parse annotation", cause).
				WithLocation(SourceLocation{File: "svc.go", Line: 9}),
			want: "svc.go:9: failed to parse annotation: file vanished",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseErrorAccessors(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(AssemblyErrorCode, "failed to assemble wrapper", cause).
		WithLocation(SourceLocation{File: "svc.go", Line: 7}).
		WithContext("type", "Processor").
		WithSuggestion("Check the type declaration").
		WithSuggestions("Check the receiver name", "Check the package")

	if err.ErrorCode() != AssemblyErrorCode {
		t.Errorf("ErrorCode() = %v, want AssemblyErrorCode", err.ErrorCode())
	}
	if err.Location().Line != 7 {
		t.Errorf("Location().Line = %d, want 7", err.Location().Line)
	}
	if err.Context()["type"] != "Processor" {
		t.Errorf("Context()[type] = %v, want Processor", err.Context()["type"])
	}
	if len(err.Suggestions()) != 3 {
		t.Errorf("len(Suggestions()) = %d, want 3", len(err.Suggestions()))
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{SyntaxErrorCode, "SyntaxError"},
		{ValidationErrorCode, "ValidationError"},
		{ParseErrorCode, "ParseError"},
		{AssemblyErrorCode, "AssemblyError"},
		{TemplateErrorCode, "TemplateError"},
		{FileSystemErrorCode, "FileSystemError"},
		{ConfigurationErrorCode, "ConfigurationError"},
		{ModuleErrorCode, "ModuleError"},
		{UnknownErrorCode, "UnknownError"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMultipleErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		multi := NewMultipleErrors()
		if !multi.IsEmpty() {
			t.Error("IsEmpty() = false for a fresh collection")
		}
		if multi.Error() != "no errors" {
			t.Errorf("Error() = %q, want %q", multi.Error(), "no errors")
		}
	})

	t.Run("single error passes through", func(t *testing.T) {
		multi := NewMultipleErrors()
		multi.Add(New(ParseErrorCode, "failed to parse package billing"))

		if multi.Error() != "failed to parse package billing" {
			t.Errorf("Error() = %q", multi.Error())
		}
		if multi.Count() != 1 {
			t.Errorf("Count() = %d, want 1", multi.Count())
		}
	})

	t.Run("multiple errors are numbered", func(t *testing.T) {
		multi := NewMultipleErrors()
		multi.Add(New(ParseErrorCode, "failed to parse package alpha"))
		multi.Add(New(FileSystemErrorCode, "failed to write wrapper for Beta").WithSuggestion("Check permissions"))

		message := multi.Error()
		if !strings.Contains(message, "multiple errors (2 total):") {
			t.Errorf("Error() missing header: %q", message)
		}
		if !strings.Contains(message, "1. failed to parse package alpha") {
			t.Errorf("Error() missing first entry: %q", message)
		}
		if !strings.Contains(message, "2. failed to write wrapper for Beta") {
			t.Errorf("Error() missing second entry: %q", message)
		}

		if !multi.HasCode(ParseErrorCode) {
			t.Error("HasCode(ParseErrorCode) = false")
		}
		if multi.HasCode(TemplateErrorCode) {
			t.Error("HasCode(TemplateErrorCode) = true for a code never added")
		}
		if len(multi.Suggestions()) != 1 {
			t.Errorf("len(Suggestions()) = %d, want 1", len(multi.Suggestions()))
		}
	})
}

func TestWrappingHelpers(t *testing.T) {
	cause := stderrors.New("underlying")

	tests := []struct {
		name        string
		err         *BaseError
		wantCode    ErrorCode
		wantMessage string
	}{
		{
			name:        "annotation",
			err:         WrapAnnotationError("//tracewrap::instrument -Source", cause),
			wantCode:    SyntaxErrorCode,
			wantMessage: `failed to parse annotation "//tracewrap::instrument -Source"`,
		},
		{
			name:        "assembly",
			err:         WrapAssemblyError("Processor", cause),
			wantCode:    AssemblyErrorCode,
			wantMessage: "failed to assemble wrapper for Processor",
		},
		{
			name:        "module",
			err:         WrapModuleError("/tmp/app", cause),
			wantCode:    ModuleErrorCode,
			wantMessage: "failed to resolve module for '/tmp/app'",
		},
		{
			name:        "configuration",
			err:         ConfigurationError("directories", "cannot be empty"),
			wantCode:    ConfigurationErrorCode,
			wantMessage: "configuration error in 'directories': cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.ErrorCode() != tt.wantCode {
				t.Errorf("ErrorCode() = %v, want %v", tt.err.ErrorCode(), tt.wantCode)
			}
			if !strings.Contains(tt.err.Error(), tt.wantMessage) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.wantMessage)
			}
		})
	}
}
