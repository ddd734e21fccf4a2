package generator

import (
	"strings"

	"github.com/toyz/tracewrap/internal/models"
)

// Reconstruct turns an ordered parameter list back into Go source text. It
// returns the parenthesized parameter list and the comma-separated argument
// list that forwards those parameters to the wrapped implementation.
//
// Parameter names always exist at this point; the parser synthesizes a name
// for any parameter the author left unnamed. A variadic parameter keeps its
// "..." prefix in the declaration and forwards as "name...".
func Reconstruct(params []models.ParameterDescriptor) (signature string, forwarding string) {
	if len(params) == 0 {
		return "()", ""
	}

	declared := make([]string, len(params))
	forwarded := make([]string, len(params))
	for i, param := range params {
		declared[i] = param.Name + " " + param.Type
		if param.Variadic {
			forwarded[i] = param.Name + "..."
		} else {
			forwarded[i] = param.Name
		}
	}

	return "(" + strings.Join(declared, ", ") + ")", strings.Join(forwarded, ", ")
}
