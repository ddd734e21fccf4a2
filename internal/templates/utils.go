package templates

import (
	"strings"
	"unicode"
)

// GeneratedFileSuffix marks every file this generator writes; the cleaner
// and the source scanner both key off it.
const GeneratedFileSuffix = ".tracewrap.go"

// BuildCompanionName returns the wrapper type name for a candidate type
func BuildCompanionName(typeName string) string {
	return "Instrumented" + typeName + "Impl"
}

// BuildArtifactFileName returns the file name a wrapper is written to,
// e.g. InstrumentedUserServiceImpl -> instrumented_user_service_impl.tracewrap.go
func BuildArtifactFileName(companionName string) string {
	return ToSnakeCase(companionName) + GeneratedFileSuffix
}

// ToSnakeCase converts a CamelCase identifier to snake_case, keeping
// acronym runs together: HTTPClient -> http_client.
func ToSnakeCase(name string) string {
	var builder strings.Builder
	runes := []rune(name)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			atBoundary := i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])))
			if atBoundary {
				builder.WriteRune('_')
			}
			builder.WriteRune(unicode.ToLower(r))
			continue
		}
		builder.WriteRune(r)
	}

	return builder.String()
}
