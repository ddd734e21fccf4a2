package errors

import "fmt"

// Wrapping helpers for the pipeline stages. Each returns a *BaseError so
// callers can keep chaining WithContext/WithSuggestion.

// WrapAnnotationError wraps a failure to parse an annotation comment
func WrapAnnotationError(raw string, cause error) *BaseError {
	return Wrap(SyntaxErrorCode, fmt.Sprintf("failed to parse annotation %q", raw), cause).
		WithContext("annotation", raw)
}

// WrapParseError wraps a failure to parse Go source
func WrapParseError(item string, cause error) *BaseError {
	return Wrap(ParseErrorCode, fmt.Sprintf("failed to parse %s", item), cause)
}

// WrapAssemblyError wraps a failure to assemble a wrapper for one candidate
func WrapAssemblyError(typeName string, cause error) *BaseError {
	return Wrap(AssemblyErrorCode, fmt.Sprintf("failed to assemble wrapper for %s", typeName), cause).
		WithContext("type", typeName)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	return Wrap(TemplateErrorCode, fmt.Sprintf("failed to %s template '%s'", operation, templateName), cause).
		WithContext("template", templateName).
		WithContext("operation", operation)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	return Wrap(FileSystemErrorCode, fmt.Sprintf("failed to %s file '%s'", operation, path), cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapModuleError wraps module resolution errors
func WrapModuleError(dir string, cause error) *BaseError {
	return Wrap(ModuleErrorCode, fmt.Sprintf("failed to resolve module for '%s'", dir), cause).
		WithContext("directory", dir)
}

// ValidationError creates a schema validation error
func ValidationError(field, expected, actual string) *BaseError {
	return Newf(ValidationErrorCode, "invalid %s: expected %s, got %s", field, expected, actual).
		WithContext("field", field).
		WithContext("expected", expected).
		WithContext("actual", actual)
}

// ConfigurationError creates a configuration error
func ConfigurationError(setting, message string) *BaseError {
	return Newf(ConfigurationErrorCode, "configuration error in '%s': %s", setting, message).
		WithContext("setting", setting)
}
