// Package collector merges the per-file fragments of a candidate type into
// one member set. Discovery may see the same declaration more than once, so
// merging deduplicates members by name instead of concatenating fragment
// lists.
package collector

import (
	"go/ast"

	"github.com/toyz/tracewrap/internal/models"
	"github.com/toyz/tracewrap/internal/templates"
)

// MemberCollector merges fragments into the member and import lists the
// assembler consumes.
type MemberCollector struct{}

// New creates a new member collector
func New() *MemberCollector {
	return &MemberCollector{}
}

// Collect walks the descriptor's fragments in order and produces the merged
// member set: exported methods deduplicated by name (first declaration
// wins), exported fields, and the first-seen-deduplicated import union.
func (c *MemberCollector) Collect(descriptor *models.TypeDescriptor) *models.MemberSet {
	methods := make([]models.MemberDescriptor, 0)
	fields := make([]models.MemberDescriptor, 0)
	methodSeen := make(map[string]struct{})
	fieldSeen := make(map[string]struct{})
	imports := templates.NewImportSet()

	for _, fragment := range descriptor.Fragments {
		imports.AddAll(fragment.Imports)

		for _, method := range fragment.Methods {
			if !ast.IsExported(method.Name) {
				continue
			}
			if _, duplicate := methodSeen[method.Name]; duplicate {
				continue
			}
			methodSeen[method.Name] = struct{}{}
			methods = append(methods, method)
		}

		for _, field := range fragment.Fields {
			if !ast.IsExported(field.Name) {
				continue
			}
			if _, duplicate := fieldSeen[field.Name]; duplicate {
				continue
			}
			fieldSeen[field.Name] = struct{}{}
			fields = append(fields, field)
		}
	}

	return &models.MemberSet{
		Methods: methods,
		Fields:  fields,
		Imports: imports.Directives(),
	}
}
