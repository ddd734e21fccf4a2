package parser

import (
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strconv"
	"strings"

	"github.com/toyz/tracewrap/internal/models"
)

// collectFragments gathers the named type's per-file contributions. The
// declaring file contributes the field list; any file with methods on a
// matching receiver contributes those methods. A contributing file also
// contributes its whole import block. Files that contribute nothing are
// left out so their imports never reach the artifact.
func (p *Parser) collectFragments(typeName string, entries []fileEntry) []models.Fragment {
	var fragments []models.Fragment

	for _, entry := range entries {
		fragment := models.Fragment{FileName: entry.baseName()}

		for _, decl := range entry.file.Decls {
			switch node := decl.(type) {
			case *ast.GenDecl:
				if node.Tok != token.TYPE {
					continue
				}
				for _, spec := range node.Specs {
					typeSpec, ok := spec.(*ast.TypeSpec)
					if !ok || typeSpec.Name.Name != typeName {
						continue
					}
					fragment.DeclaresType = true
					if structType, ok := typeSpec.Type.(*ast.StructType); ok && !typeSpec.Assign.IsValid() {
						fragment.Fields = p.structFields(structType)
					}
				}
			case *ast.FuncDecl:
				if node.Recv == nil || !receiverMatches(node.Recv, typeName) {
					continue
				}
				fragment.Methods = append(fragment.Methods, p.methodDescriptor(node))
			}
		}

		if !fragment.DeclaresType && len(fragment.Methods) == 0 {
			continue
		}
		fragment.Imports = fileImports(entry.file)
		fragments = append(fragments, fragment)
	}

	return fragments
}

// methodDescriptor captures one method's name, parameters, and result text.
func (p *Parser) methodDescriptor(node *ast.FuncDecl) models.MemberDescriptor {
	return models.MemberDescriptor{
		Kind:   models.MemberKindMethod,
		Name:   node.Name.Name,
		Type:   p.resultsText(node.Type.Results),
		Params: p.parameterList(node.Type.Params),
	}
}

// parameterList flattens a parameter field list into one descriptor per
// parameter. Shared-type groups like "a, b int" expand to one entry each,
// and unnamed or blank parameters get a synthesized positional name so the
// wrapper can forward them.
func (p *Parser) parameterList(fields *ast.FieldList) []models.ParameterDescriptor {
	if fields == nil || len(fields.List) == 0 {
		return nil
	}

	var params []models.ParameterDescriptor
	position := 0
	for _, field := range fields.List {
		typeText := p.exprText(field.Type)
		_, variadic := field.Type.(*ast.Ellipsis)

		if len(field.Names) == 0 {
			params = append(params, models.ParameterDescriptor{
				Name:     fmt.Sprintf("arg%d", position),
				Type:     typeText,
				Position: position,
				Variadic: variadic,
			})
			position++
			continue
		}

		for _, name := range field.Names {
			paramName := name.Name
			if paramName == "_" {
				paramName = fmt.Sprintf("arg%d", position)
			}
			params = append(params, models.ParameterDescriptor{
				Name:     paramName,
				Type:     typeText,
				Position: position,
				Variadic: variadic,
			})
			position++
		}
	}

	return params
}

// resultsText normalizes a result list to source text: empty for none, the
// bare type for a single unnamed result, and a parenthesized list otherwise.
func (p *Parser) resultsText(results *ast.FieldList) string {
	if results.NumFields() == 0 {
		return ""
	}

	if len(results.List) == 1 && len(results.List[0].Names) == 0 {
		return p.exprText(results.List[0].Type)
	}

	parts := make([]string, 0, len(results.List))
	for _, field := range results.List {
		typeText := p.exprText(field.Type)
		if len(field.Names) == 0 {
			parts = append(parts, typeText)
			continue
		}
		names := make([]string, len(field.Names))
		for i, name := range field.Names {
			names[i] = name.Name
		}
		parts = append(parts, strings.Join(names, ", ")+" "+typeText)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// structFields captures the declared fields, expanding shared-type groups
// and naming embedded fields after their base type.
func (p *Parser) structFields(structType *ast.StructType) []models.MemberDescriptor {
	if structType.Fields == nil {
		return nil
	}

	var members []models.MemberDescriptor
	for _, field := range structType.Fields.List {
		typeText := p.exprText(field.Type)

		if len(field.Names) == 0 {
			name := embeddedFieldName(field.Type)
			if name == "" {
				continue
			}
			members = append(members, models.MemberDescriptor{
				Kind: models.MemberKindField,
				Name: name,
				Type: typeText,
			})
			continue
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			members = append(members, models.MemberDescriptor{
				Kind: models.MemberKindField,
				Name: name.Name,
				Type: typeText,
			})
		}
	}

	return members
}

// receiverMatches reports whether a method's receiver names the given type.
func receiverMatches(recv *ast.FieldList, typeName string) bool {
	if len(recv.List) == 0 {
		return false
	}
	return receiverTypeName(recv.List[0].Type) == typeName
}

// receiverTypeName unwraps pointers, parens, and type parameter lists down
// to the receiver's base identifier.
func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.ParenExpr:
		return receiverTypeName(t.X)
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	default:
		return ""
	}
}

// embeddedFieldName resolves the accessor name for an embedded field: the
// base type name with any pointer or package qualifier stripped.
func embeddedFieldName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedFieldName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedFieldName(t.X)
	case *ast.IndexListExpr:
		return embeddedFieldName(t.X)
	default:
		return ""
	}
}

// fileImports converts a file's import specs into directives, preserving
// declaration order and any local alias.
func fileImports(file *ast.File) []models.ImportDirective {
	if len(file.Imports) == 0 {
		return nil
	}

	directives := make([]models.ImportDirective, 0, len(file.Imports))
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			path = strings.Trim(spec.Path.Value, `"`)
		}
		directive := models.ImportDirective{Path: path}
		if spec.Name != nil {
			directive.Alias = spec.Name.Name
		}
		directives = append(directives, directive)
	}

	return directives
}

// exprText renders a type expression exactly as written so reconstructed
// signatures round-trip the author's spelling.
func (p *Parser) exprText(expr ast.Expr) string {
	if expr == nil {
		return ""
	}
	var b strings.Builder
	_ = printer.Fprint(&b, p.fileSet, expr)
	return b.String()
}
