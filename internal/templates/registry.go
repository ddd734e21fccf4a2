package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerWrapperTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	tmpl, exists := tr.templates[name]
	return tmpl, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	tmpl, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return tmpl
}

// Execute renders a registered template with the given data
func (tr *TemplateRegistry) Execute(name string, data interface{}) (string, error) {
	tmpl, exists := tr.templates[name]
	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}
	return ExecuteTemplate(name, tmpl, data)
}

// registerWrapperTemplates registers the building blocks of a generated
// wrapper file. The section order is owned by the assembler, not by the
// templates.
func (tr *TemplateRegistry) registerWrapperTemplates() {
	tr.templates["header"] = `// Code generated by tracewrap. DO NOT EDIT.
// This file was automatically generated and should not be modified manually.`

	tr.templates["package"] = `package {{.PackageName}}`

	tr.templates["imports"] = `import (
{{range .Directives}}	{{.}}
{{end}})`

	tr.templates["type-decl"] = `// {{.CompanionName}} forwards every call to a wrapped {{.TypeName}} inside
// a tracing span.
type {{.CompanionName}} struct {
	impl  *{{.TypeName}}
	spans *{{.RuntimeRef}}.SpanSource
}`

	tr.templates["accessor"] = `func (w *{{.CompanionName}}) {{.Name}}() {{.Type}} {
	return w.impl.{{.Name}}
}`

	tr.templates["constructor"] = `// New{{.CompanionName}} wraps impl in a tracing decorator.
func New{{.CompanionName}}(impl *{{.TypeName}}) *{{.CompanionName}} {
	return &{{.CompanionName}}{
		impl:  impl,
		spans: {{.RuntimeRef}}.SourceFor("{{.SourceName}}"),
	}
}`

	tr.templates["method"] = `func (w *{{.CompanionName}}) {{.Name}}{{.Signature}}{{if .Results}} {{.Results}}{{end}} {
	span := w.spans.Start("{{.Name}}")
	defer span.End()
{{range .Tags}}	span.SetTag("{{.Key}}", {{.Value}})
{{end}}	{{if .Results}}return {{end}}w.impl.{{.Name}}({{.Forwarding}})
}`
}

// ExecuteTemplate executes a Go template with the given data
func ExecuteTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// DefaultTemplateRegistry is the global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
