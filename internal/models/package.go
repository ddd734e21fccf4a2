package models

// PackageCandidates represents everything discovery found in one package:
// the marked candidate types in first-seen order and any markers that were
// attached to declarations that can never become candidates.
type PackageCandidates struct {
	PackageName string           // name of the Go package
	DirPath     string           // file system path to the package
	Candidates  []TypeDescriptor // marked types in discovery order
	Notices     []MarkerNotice   // markers found on unsupported declarations
}

// MarkerNotice reports a tracewrap marker that sits on a declaration the
// generator cannot instrument, such as a function or a var block.
type MarkerNotice struct {
	FileName string // file containing the marker
	Line     int    // line of the marked declaration
	Message  string // what was marked and why it was ignored
}
