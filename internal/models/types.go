package models

// MemberKind distinguishes the two forwardable member shapes
type MemberKind int

const (
	MemberKindMethod MemberKind = iota
	MemberKindField
)

// String returns a human-readable name for the member kind
func (k MemberKind) String() string {
	switch k {
	case MemberKindMethod:
		return "method"
	case MemberKindField:
		return "field"
	default:
		return "unknown"
	}
}

// ReasonCode explains an eligibility verdict
type ReasonCode int

const (
	ReasonEligible ReasonCode = iota
	ReasonNotStruct
	ReasonAliasType
	ReasonGenericType
	ReasonNoDeclaration
)

// String returns a human-readable name for the reason code
func (r ReasonCode) String() string {
	switch r {
	case ReasonEligible:
		return "eligible"
	case ReasonNotStruct:
		return "not a struct type"
	case ReasonAliasType:
		return "alias declarations are not supported"
	case ReasonGenericType:
		return "generic type parameters are not supported"
	case ReasonNoDeclaration:
		return "type declaration not found"
	default:
		return "unknown"
	}
}

// Verdict is the result of the eligibility check for one candidate
type Verdict struct {
	Eligible bool       // whether an artifact should be generated
	Reason   ReasonCode // why the candidate was accepted or skipped
}

// CandidateState tracks a candidate through the generation pass
type CandidateState int

const (
	StateDiscovered CandidateState = iota
	StateFiltered
	StateCollected
	StateAssembled
	StateEmitted
	StateSkipped
	StateFailed
)

// String returns a human-readable name for the candidate state
func (s CandidateState) String() string {
	switch s {
	case StateDiscovered:
		return "discovered"
	case StateFiltered:
		return "filtered"
	case StateCollected:
		return "collected"
	case StateAssembled:
		return "assembled"
	case StateEmitted:
		return "emitted"
	case StateSkipped:
		return "skipped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
