package generator

import (
	"github.com/toyz/tracewrap/internal/models"
	"github.com/toyz/tracewrap/internal/templates"
)

// TracingEmitter builds the traced method bodies of a wrapper. Every method
// it emits opens a span named after the method, records one tag per
// parameter in declaration order, and forwards the call to the wrapped
// implementation.
type TracingEmitter struct{}

// NewEmitter creates a new TracingEmitter.
func NewEmitter() *TracingEmitter {
	return &TracingEmitter{}
}

// EmitMethod produces the render node for one forwarded method. The
// signature and forwarding text come from Reconstruct so that declaration
// and call site always agree.
func (e *TracingEmitter) EmitMethod(companionName string, member models.MemberDescriptor, signature, forwarding string) templates.MethodNode {
	tags := make([]templates.TagStatement, 0, len(member.Params))
	for _, param := range member.Params {
		tags = append(tags, templates.TagStatement{Key: param.Name, Value: param.Name})
	}

	return templates.MethodNode{
		CompanionName: companionName,
		Name:          member.Name,
		Signature:     signature,
		Results:       member.Type,
		Tags:          tags,
		Forwarding:    forwarding,
	}
}

// EmitAccessor produces the render node for one exported field accessor.
func (e *TracingEmitter) EmitAccessor(companionName string, member models.MemberDescriptor) templates.AccessorNode {
	return templates.AccessorNode{
		CompanionName: companionName,
		Name:          member.Name,
		Type:          member.Type,
	}
}
