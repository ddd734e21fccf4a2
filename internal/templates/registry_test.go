package templates

import (
	"strings"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	registry := NewTemplateRegistry()

	for _, name := range []string{"header", "package", "imports", "type-decl", "accessor", "constructor", "method"} {
		if _, exists := registry.Get(name); !exists {
			t.Errorf("Get(%q) = not found, want registered", name)
		}
	}

	if _, exists := registry.Get("no-such-template"); exists {
		t.Error("Get() found a template that was never registered")
	}
}

func TestRegistryMustGetPanics(t *testing.T) {
	registry := NewTemplateRegistry()

	defer func() {
		if recovered := recover(); recovered == nil {
			t.Error("MustGet() should panic for unknown template names")
		}
	}()

	registry.MustGet("no-such-template")
}

func TestRegistryExecute(t *testing.T) {
	registry := NewTemplateRegistry()

	got, err := registry.Execute("package", PackageNode{PackageName: "billing"})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if got != "package billing" {
		t.Errorf("Execute(package) = %q, want %q", got, "package billing")
	}

	if _, err := registry.Execute("no-such-template", nil); err == nil {
		t.Error("Execute() should fail for unknown template names")
	}
}

func TestExecuteTemplateReportsBadTemplate(t *testing.T) {
	_, err := ExecuteTemplate("broken", "{{.Missing", nil)
	if err == nil || !strings.Contains(err.Error(), "failed to parse template") {
		t.Errorf("ExecuteTemplate() error = %v, want parse failure", err)
	}
}
