package models

import "github.com/toyz/tracewrap/internal/annotations"

// TypeDescriptor represents one marked candidate type and every source
// fragment contributing to it. It is built once during discovery and never
// mutated after the parser hands it to the assembler.
type TypeDescriptor struct {
	Name           string                        // declared type name
	PackageName    string                        // package the type belongs to
	DirPath        string                        // directory the package was parsed from
	SourceName     string                        // span source label, defaults to Name
	Fragments      []Fragment                    // per-file contributions, ordered by file name
	IsStruct       bool                          // declaration is a struct type
	IsAlias        bool                          // declaration is a type alias
	IsGeneric      bool                          // declaration carries type parameters
	HasDeclaration bool                          // the declaring fragment was found
	Annotation     *annotations.ParsedAnnotation // the marker that made this a candidate
	FileName       string                        // file containing the declaration
	Line           int                           // line of the declaration
}

// Fragment represents one file's contribution to a logical type: the
// declaration itself, methods with a matching receiver, and the file's
// import block.
type Fragment struct {
	FileName     string             // base name of the contributing file
	DeclaresType bool               // whether this file holds the type declaration
	Imports      []ImportDirective  // the file's imports in declaration order
	Methods      []MemberDescriptor // methods declared on the type in this file
	Fields       []MemberDescriptor // struct fields, present only on the declaring fragment
}

// MemberDescriptor represents one forwardable member of a candidate type
type MemberDescriptor struct {
	Kind   MemberKind            // method or field
	Name   string                // member name as declared
	Type   string                // return or field type text, empty for void methods
	Params []ParameterDescriptor // ordered parameters, methods only
}

// ParameterDescriptor represents one method parameter
type ParameterDescriptor struct {
	Name     string // parameter name, synthesized for unnamed or blank parameters
	Type     string // declared type text
	Position int    // zero-based declaration position
	Variadic bool   // final ...T parameter
}

// ImportDirective represents one import spec from a fragment's import block
type ImportDirective struct {
	Alias string // optional local alias
	Path  string // quoted import path without the quotes
}

// Render returns the exact import spec text; this text is the directive's
// identity for deduplication.
func (d ImportDirective) Render() string {
	if d.Alias != "" {
		return d.Alias + ` "` + d.Path + `"`
	}
	return `"` + d.Path + `"`
}

// MemberSet is the merged view of a candidate's fragments: distinct methods,
// fields, and the first-seen-deduplicated import list.
type MemberSet struct {
	Methods []MemberDescriptor // distinct exported methods across all fragments
	Fields  []MemberDescriptor // exported fields from the declaring fragment
	Imports []ImportDirective  // deduplicated imports, first occurrence wins
}
