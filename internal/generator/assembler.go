// Package generator assembles tracing wrapper source files for types that
// carry the instrument annotation. The assembler validates a candidate,
// collects its members across fragments, reconstructs method signatures, and
// renders the final artifact through the template registry.
package generator

import (
	"path"
	"path/filepath"

	"github.com/toyz/tracewrap/internal/collector"
	"github.com/toyz/tracewrap/internal/errors"
	"github.com/toyz/tracewrap/internal/models"
	"github.com/toyz/tracewrap/internal/templates"
)

// Eligibility decides whether a candidate type can receive a wrapper. The
// verdict carries a reason code so callers can report skips instead of
// silently dropping candidates.
func Eligibility(descriptor *models.TypeDescriptor) models.Verdict {
	switch {
	case descriptor == nil || !descriptor.HasDeclaration:
		return models.Verdict{Reason: models.ReasonNoDeclaration}
	case descriptor.IsAlias:
		return models.Verdict{Reason: models.ReasonAliasType}
	case !descriptor.IsStruct:
		return models.Verdict{Reason: models.ReasonNotStruct}
	case descriptor.IsGeneric:
		return models.Verdict{Reason: models.ReasonGenericType}
	default:
		return models.Verdict{Eligible: true, Reason: models.ReasonEligible}
	}
}

// ClassAssembler builds one wrapper artifact per eligible candidate. It owns
// the section order of the generated file: header, package clause, imports,
// type declaration, field accessors, constructor, traced methods.
type ClassAssembler struct {
	collector *collector.MemberCollector
	emitter   *TracingEmitter
	templates *templates.TemplateRegistry
}

// NewAssembler creates a ClassAssembler backed by the default template
// registry.
func NewAssembler() *ClassAssembler {
	return &ClassAssembler{
		collector: collector.New(),
		emitter:   NewEmitter(),
		templates: templates.DefaultTemplateRegistry,
	}
}

// Assemble produces the wrapper artifact for one candidate. Ineligible
// candidates return a nil artifact together with the verdict explaining the
// skip; only template failures produce an error.
//
// runtimeImport is the import path of the tracing runtime package the
// generated code calls into.
func (a *ClassAssembler) Assemble(descriptor *models.TypeDescriptor, runtimeImport string) (*models.GeneratedArtifact, models.Verdict, error) {
	verdict := Eligibility(descriptor)
	if !verdict.Eligible {
		return nil, verdict, nil
	}

	members := a.collector.Collect(descriptor)

	imports := templates.NewImportSet()
	imports.AddAll(members.Imports)
	imports.Add(models.ImportDirective{Path: runtimeImport})

	companionName := templates.BuildCompanionName(descriptor.Name)
	runtimeRef := path.Base(runtimeImport)

	sourceName := descriptor.SourceName
	if sourceName == "" {
		sourceName = descriptor.Name
	}

	nodes := []templates.Node{
		templates.HeaderNode{},
		templates.PackageNode{PackageName: descriptor.PackageName},
		templates.ImportBlockNode{Imports: imports.Directives()},
		templates.TypeDeclNode{
			CompanionName: companionName,
			TypeName:      descriptor.Name,
			RuntimeRef:    runtimeRef,
		},
	}

	for _, field := range members.Fields {
		nodes = append(nodes, a.emitter.EmitAccessor(companionName, field))
	}

	nodes = append(nodes, templates.ConstructorNode{
		CompanionName: companionName,
		TypeName:      descriptor.Name,
		RuntimeRef:    runtimeRef,
		SourceName:    sourceName,
	})

	for _, method := range members.Methods {
		signature, forwarding := Reconstruct(method.Params)
		nodes = append(nodes, a.emitter.EmitMethod(companionName, method, signature, forwarding))
	}

	content, err := templates.RenderArtifact(a.templates, nodes)
	if err != nil {
		return nil, verdict, errors.WrapAssemblyError(descriptor.Name, err)
	}

	artifact := &models.GeneratedArtifact{
		TypeName:    companionName,
		PackageName: descriptor.PackageName,
		FilePath:    filepath.Join(descriptor.DirPath, templates.BuildArtifactFileName(companionName)),
		Content:     content,
	}

	return artifact, verdict, nil
}
