package parser

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/toyz/tracewrap/internal/annotations"
	"github.com/toyz/tracewrap/internal/models"
)

// discoverCandidates walks every file's declarations and turns each
// instrument annotation into a candidate or a notice. Markers on type
// declarations become candidates whatever the declaration's form; the
// eligibility check downstream decides whether they produce an artifact.
// Markers on functions, variables, and constants become notices. Markers
// attached to nothing become declaration-less candidates so they surface as
// reasoned skips instead of disappearing.
func (p *Parser) discoverCandidates(packageName, dirPath string, entries []fileEntry) ([]models.TypeDescriptor, []models.MarkerNotice, error) {
	var candidates []models.TypeDescriptor
	var notices []models.MarkerNotice

	for _, entry := range entries {
		consumed := make(map[token.Pos]bool)

		for _, decl := range entry.file.Decls {
			switch node := decl.(type) {
			case *ast.GenDecl:
				if node.Tok == token.TYPE {
					for _, spec := range node.Specs {
						typeSpec, ok := spec.(*ast.TypeSpec)
						if !ok {
							continue
						}
						doc := typeSpec.Doc
						if doc == nil && len(node.Specs) == 1 {
							doc = node.Doc
						}
						candidate, duplicates, err := p.candidateFromTypeSpec(packageName, dirPath, entry, typeSpec, doc, consumed)
						if err != nil {
							return nil, nil, err
						}
						notices = append(notices, duplicates...)
						if candidate != nil {
							candidates = append(candidates, *candidate)
						}
					}
					continue
				}
				target := fmt.Sprintf("a %s declaration", node.Tok)
				notices = append(notices, p.misplacedMarkers(entry, node.Doc, consumed, target)...)
			case *ast.FuncDecl:
				target := fmt.Sprintf("function %s", node.Name.Name)
				notices = append(notices, p.misplacedMarkers(entry, node.Doc, consumed, target)...)
			}
		}

		floats, err := p.floatingMarkers(packageName, dirPath, entry, consumed)
		if err != nil {
			return nil, nil, err
		}
		candidates = append(candidates, floats...)
	}

	return candidates, notices, nil
}

// candidateFromTypeSpec builds one candidate from an annotated type
// declaration. Extra instrument annotations on the same declaration are
// reported as notices; the first one wins.
func (p *Parser) candidateFromTypeSpec(packageName, dirPath string, entry fileEntry, typeSpec *ast.TypeSpec, doc *ast.CommentGroup, consumed map[token.Pos]bool) (*models.TypeDescriptor, []models.MarkerNotice, error) {
	if doc == nil {
		return nil, nil, nil
	}

	var candidate *models.TypeDescriptor
	var notices []models.MarkerNotice

	for _, comment := range doc.List {
		if !annotations.IsAnnotation(comment.Text) {
			continue
		}
		consumed[comment.Pos()] = true

		position := p.fileSet.Position(comment.Pos())
		parsed, err := p.annotations.Parse(comment.Text, annotations.SourceLocation{
			File:   entry.baseName(),
			Line:   position.Line,
			Column: position.Column,
		})
		if err != nil {
			return nil, nil, err
		}
		parsed.Target = typeSpec.Name.Name

		if candidate != nil {
			notices = append(notices, models.MarkerNotice{
				FileName: entry.baseName(),
				Line:     position.Line,
				Message:  fmt.Sprintf("duplicate instrument annotation on type %s ignored", typeSpec.Name.Name),
			})
			continue
		}

		_, isStruct := typeSpec.Type.(*ast.StructType)
		declPosition := p.fileSet.Position(typeSpec.Pos())
		candidate = &models.TypeDescriptor{
			Name:           typeSpec.Name.Name,
			PackageName:    packageName,
			DirPath:        dirPath,
			SourceName:     parsed.GetString("Source", typeSpec.Name.Name),
			IsStruct:       isStruct,
			IsAlias:        typeSpec.Assign.IsValid(),
			IsGeneric:      typeSpec.TypeParams.NumFields() > 0,
			HasDeclaration: true,
			Annotation:     parsed,
			FileName:       entry.baseName(),
			Line:           declPosition.Line,
		}
	}

	return candidate, notices, nil
}

// misplacedMarkers records a notice for every instrument annotation found on
// a declaration that can never be wrapped.
func (p *Parser) misplacedMarkers(entry fileEntry, doc *ast.CommentGroup, consumed map[token.Pos]bool, target string) []models.MarkerNotice {
	if doc == nil {
		return nil
	}

	var notices []models.MarkerNotice
	for _, comment := range doc.List {
		if !annotations.IsAnnotation(comment.Text) {
			continue
		}
		consumed[comment.Pos()] = true

		position := p.fileSet.Position(comment.Pos())
		notices = append(notices, models.MarkerNotice{
			FileName: entry.baseName(),
			Line:     position.Line,
			Message:  fmt.Sprintf("instrument annotation on %s ignored, only type declarations can be instrumented", target),
		})
	}
	return notices
}

// floatingMarkers finds instrument annotations that are not attached to any
// declaration. They still parse, so malformed ones fail loudly, and the
// well-formed ones become candidates without a declaration.
func (p *Parser) floatingMarkers(packageName, dirPath string, entry fileEntry, consumed map[token.Pos]bool) ([]models.TypeDescriptor, error) {
	var floats []models.TypeDescriptor

	for _, group := range entry.file.Comments {
		for _, comment := range group.List {
			if consumed[comment.Pos()] || !annotations.IsAnnotation(comment.Text) {
				continue
			}

			position := p.fileSet.Position(comment.Pos())
			parsed, err := p.annotations.Parse(comment.Text, annotations.SourceLocation{
				File:   entry.baseName(),
				Line:   position.Line,
				Column: position.Column,
			})
			if err != nil {
				return nil, err
			}

			floats = append(floats, models.TypeDescriptor{
				PackageName: packageName,
				DirPath:     dirPath,
				Annotation:  parsed,
				FileName:    entry.baseName(),
				Line:        position.Line,
			})
		}
	}

	return floats, nil
}
