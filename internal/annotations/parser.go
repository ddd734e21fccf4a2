package annotations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AnnotationPrefix is the comment prefix every tracewrap annotation starts with
const AnnotationPrefix = "//tracewrap::"

// annotationExpr is the participle grammar root for a tracewrap annotation,
// e.g. //tracewrap::instrument -Source=Billing
type annotationExpr struct {
	Comment   string     `parser:"@Comment"`
	Marker    string     `parser:"@Marker"`
	Separator string     `parser:"@Separator"`
	Directive string     `parser:"@Ident"`
	Flags     []flagExpr `parser:"@@*"`
}

// flagExpr is one -Name or -Name=Value flag
type flagExpr struct {
	Name  string  `parser:"@Flag"`
	Value *string `parser:"(Assign (@Ident | @String))?"`
}

// Parser parses tracewrap comment annotations using participle
type Parser struct {
	parser   *participle.Parser[annotationExpr]
	registry AnnotationRegistry
}

// NewParser creates a new annotation parser backed by the given registry
func NewParser(registry AnnotationRegistry) *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "Marker", Pattern: `tracewrap`},
		{Name: "Separator", Pattern: `::`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Flag", Pattern: `-[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Assign", Pattern: `=`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationExpr](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{
		parser:   parser,
		registry: registry,
	}
}

// IsAnnotation reports whether a comment line looks like a tracewrap
// annotation. It makes no claim about validity, only about the prefix.
func IsAnnotation(comment string) bool {
	return strings.HasPrefix(strings.TrimSpace(comment), AnnotationPrefix)
}

// Parse parses a single annotation comment into a ParsedAnnotation,
// validating it against the registered schema.
func (p *Parser) Parse(comment string, location SourceLocation) (*ParsedAnnotation, error) {
	trimmed := strings.TrimSpace(comment)
	if !IsAnnotation(trimmed) {
		return nil, &SyntaxError{
			Msg:  fmt.Sprintf("not a tracewrap annotation: %q", trimmed),
			Loc:  location,
			Hint: fmt.Sprintf("annotations start with '%s'", AnnotationPrefix),
		}
	}

	expr, err := p.parser.ParseString(location.File, trimmed)
	if err != nil {
		return nil, &SyntaxError{
			Msg:  err.Error(),
			Loc:  location,
			Hint: "expected '//tracewrap::<directive> [-Flag=Value ...]'",
		}
	}

	annotationType, err := ParseAnnotationType(expr.Directive)
	if err != nil {
		return nil, &SyntaxError{
			Msg:  err.Error(),
			Loc:  location,
			Hint: fmt.Sprintf("known directives: %s", strings.Join(p.knownDirectives(), ", ")),
		}
	}

	if p.registry != nil && !p.registry.IsRegistered(annotationType) {
		return nil, &SyntaxError{
			Msg: fmt.Sprintf("annotation type '%s' is not registered", expr.Directive),
			Loc: location,
		}
	}

	parsed := &ParsedAnnotation{
		Type:       annotationType,
		Parameters: make(map[string]string),
		Location:   location,
		Raw:        trimmed,
	}

	if err := p.collectFlags(parsed, expr.Flags); err != nil {
		return nil, err
	}

	if p.registry != nil {
		if err := p.validateAgainstSchema(parsed); err != nil {
			return nil, err
		}
	}

	return parsed, nil
}

// collectFlags turns the grammar's flag expressions into parameter values.
// A flag given without a value falls back to its schema default.
func (p *Parser) collectFlags(parsed *ParsedAnnotation, flags []flagExpr) error {
	var schema AnnotationSchema
	if p.registry != nil {
		schema, _ = p.registry.GetSchema(parsed.Type)
	}

	for _, flag := range flags {
		name := strings.TrimPrefix(flag.Name, "-")

		if flag.Value != nil {
			parsed.Parameters[name] = unquote(*flag.Value)
			continue
		}

		spec, known := schema.Parameters[name]
		if known && spec.DefaultValue != "" {
			parsed.Parameters[name] = spec.DefaultValue
			continue
		}

		return &ValidationError{
			Parameter: name,
			Reason:    "flag requires a value",
			Loc:       parsed.Location,
			Hint:      fmt.Sprintf("use -%s=<value>", name),
		}
	}

	return nil
}

// validateAgainstSchema checks provided parameters against the schema and
// reports unknown, missing, or invalid values.
func (p *Parser) validateAgainstSchema(parsed *ParsedAnnotation) error {
	schema, err := p.registry.GetSchema(parsed.Type)
	if err != nil {
		return &SyntaxError{
			Msg: fmt.Sprintf("no schema found for annotation type: %s", parsed.Type),
			Loc: parsed.Location,
		}
	}

	for paramName, paramValue := range parsed.Parameters {
		spec, exists := schema.Parameters[paramName]
		if !exists {
			return &ValidationError{
				Parameter: paramName,
				Reason:    fmt.Sprintf("unknown parameter for annotation type %s", parsed.Type),
				Loc:       parsed.Location,
				Hint:      fmt.Sprintf("supported parameters: %s", strings.Join(parameterNames(schema), ", ")),
			}
		}

		if spec.Validator != nil {
			if err := spec.Validator(paramValue); err != nil {
				return &ValidationError{
					Parameter: paramName,
					Reason:    err.Error(),
					Loc:       parsed.Location,
					Hint:      spec.Description,
				}
			}
		}
	}

	for paramName, spec := range schema.Parameters {
		if spec.Required {
			if _, exists := parsed.Parameters[paramName]; !exists {
				return &ValidationError{
					Parameter: paramName,
					Reason:    fmt.Sprintf("missing required parameter for annotation type %s", parsed.Type),
					Loc:       parsed.Location,
					Hint:      spec.Description,
				}
			}
		}
	}

	for _, validator := range schema.Validators {
		if err := validator(parsed); err != nil {
			return &ValidationError{
				Parameter: parsed.Type.String(),
				Reason:    err.Error(),
				Loc:       parsed.Location,
			}
		}
	}

	return nil
}

// knownDirectives lists the directive names the registry accepts
func (p *Parser) knownDirectives() []string {
	if p.registry == nil {
		return nil
	}
	types := p.registry.ListTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.String())
	}
	return names
}

// parameterNames lists the parameter names a schema accepts
func parameterNames(schema AnnotationSchema) []string {
	names := make([]string, 0, len(schema.Parameters))
	for name := range schema.Parameters {
		names = append(names, name)
	}
	return names
}

// unquote strips surrounding quotes from a lexed String token
func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		if unquoted, err := strconv.Unquote(value); err == nil {
			return unquoted
		}
		return value[1 : len(value)-1]
	}
	return value
}
