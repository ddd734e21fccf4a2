package models

// GeneratedArtifact represents one generated wrapper: the companion type
// name keys the emission, so a logical type yields at most one artifact per
// pass.
type GeneratedArtifact struct {
	TypeName    string // companion type name, e.g. InstrumentedUserServiceImpl
	PackageName string // package the artifact belongs to
	FilePath    string // path the artifact should be written to
	Content     string // generated Go source text
}
