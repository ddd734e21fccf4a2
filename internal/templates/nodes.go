package templates

import (
	"strings"

	"github.com/toyz/tracewrap/internal/models"
)

// Node is one typed section of a generated wrapper file. The assembler
// builds the node list; RenderArtifact turns it into text. Keeping the two
// apart makes section order and deduplication testable without string
// matching against the final file.
type Node interface {
	Render(registry *TemplateRegistry) (string, error)
}

// HeaderNode renders the fixed generated-code header
type HeaderNode struct{}

// Render implements Node
func (HeaderNode) Render(registry *TemplateRegistry) (string, error) {
	return registry.Execute("header", nil)
}

// PackageNode renders the package clause
type PackageNode struct {
	PackageName string
}

// Render implements Node
func (n PackageNode) Render(registry *TemplateRegistry) (string, error) {
	return registry.Execute("package", n)
}

// ImportBlockNode renders the import block, preserving the order it was
// given. An empty block renders nothing.
type ImportBlockNode struct {
	Imports []models.ImportDirective
}

// Render implements Node
func (n ImportBlockNode) Render(registry *TemplateRegistry) (string, error) {
	if len(n.Imports) == 0 {
		return "", nil
	}

	directives := make([]string, len(n.Imports))
	for i, directive := range n.Imports {
		directives[i] = directive.Render()
	}

	return registry.Execute("imports", struct{ Directives []string }{Directives: directives})
}

// TypeDeclNode renders the companion struct declaration
type TypeDeclNode struct {
	CompanionName string // generated wrapper type name
	TypeName      string // wrapped implementation type name
	RuntimeRef    string // package selector of the tracing runtime
}

// Render implements Node
func (n TypeDeclNode) Render(registry *TemplateRegistry) (string, error) {
	return registry.Execute("type-decl", n)
}

// AccessorNode renders one get-only field accessor
type AccessorNode struct {
	CompanionName string // generated wrapper type name
	Name          string // field name
	Type          string // field type text
}

// Render implements Node
func (n AccessorNode) Render(registry *TemplateRegistry) (string, error) {
	return registry.Execute("accessor", n)
}

// ConstructorNode renders the wrapper constructor
type ConstructorNode struct {
	CompanionName string // generated wrapper type name
	TypeName      string // wrapped implementation type name
	RuntimeRef    string // package selector of the tracing runtime
	SourceName    string // span source label
}

// Render implements Node
func (n ConstructorNode) Render(registry *TemplateRegistry) (string, error) {
	return registry.Execute("constructor", n)
}

// TagStatement is one span.SetTag call inside a traced method body
type TagStatement struct {
	Key   string // tag key, the parameter's own name
	Value string // expression whose value is recorded
}

// MethodNode renders one traced forwarding method
type MethodNode struct {
	CompanionName string         // generated wrapper type name
	Name          string         // method name
	Signature     string         // parenthesized parameter list text
	Results       string         // result list text, empty for void methods
	Tags          []TagStatement // per-parameter tag statements in order
	Forwarding    string         // comma-joined forwarding argument list
}

// Render implements Node
func (n MethodNode) Render(registry *TemplateRegistry) (string, error) {
	return registry.Execute("method", n)
}

// RenderArtifact renders all nodes in order and joins the non-empty sections
// with blank lines. Rendering is pure: the same node list always yields the
// same text.
func RenderArtifact(registry *TemplateRegistry, nodes []Node) (string, error) {
	sections := make([]string, 0, len(nodes))
	for _, node := range nodes {
		section, err := node.Render(registry)
		if err != nil {
			return "", err
		}
		if section == "" {
			continue
		}
		sections = append(sections, section)
	}

	return strings.Join(sections, "\n\n") + "\n", nil
}
