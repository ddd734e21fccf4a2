package generator

import (
	"testing"

	"github.com/toyz/tracewrap/internal/models"
)

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name           string
		params         []models.ParameterDescriptor
		wantSignature  string
		wantForwarding string
	}{
		{
			name:           "no parameters",
			params:         nil,
			wantSignature:  "()",
			wantForwarding: "",
		},
		{
			name: "single parameter",
			params: []models.ParameterDescriptor{
				{Name: "id", Type: "string", Position: 0},
			},
			wantSignature:  "(id string)",
			wantForwarding: "id",
		},
		{
			name: "multiple parameters keep order",
			params: []models.ParameterDescriptor{
				{Name: "customer", Type: "string", Position: 0},
				{Name: "amount", Type: "int64", Position: 1},
				{Name: "note", Type: "string", Position: 2},
			},
			wantSignature:  "(customer string, amount int64, note string)",
			wantForwarding: "customer, amount, note",
		},
		{
			name: "pointer and qualified types",
			params: []models.ParameterDescriptor{
				{Name: "ctx", Type: "context.Context", Position: 0},
				{Name: "req", Type: "*http.Request", Position: 1},
			},
			wantSignature:  "(ctx context.Context, req *http.Request)",
			wantForwarding: "ctx, req",
		},
		{
			name: "variadic forwards with ellipsis",
			params: []models.ParameterDescriptor{
				{Name: "format", Type: "string", Position: 0},
				{Name: "args", Type: "...interface{}", Position: 1, Variadic: true},
			},
			wantSignature:  "(format string, args ...interface{})",
			wantForwarding: "format, args...",
		},
		{
			name: "synthesized names pass through",
			params: []models.ParameterDescriptor{
				{Name: "arg0", Type: "int", Position: 0},
				{Name: "arg1", Type: "bool", Position: 1},
			},
			wantSignature:  "(arg0 int, arg1 bool)",
			wantForwarding: "arg0, arg1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signature, forwarding := Reconstruct(tt.params)
			if signature != tt.wantSignature {
				t.Errorf("signature = %q, want %q", signature, tt.wantSignature)
			}
			if forwarding != tt.wantForwarding {
				t.Errorf("forwarding = %q, want %q", forwarding, tt.wantForwarding)
			}
		})
	}
}
