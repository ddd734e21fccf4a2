package cli

import (
	"github.com/toyz/tracewrap/internal/errors"
	"github.com/toyz/tracewrap/internal/utils"
)

// Config holds the configuration for one generation pass
type Config struct {
	// Directories is the list of directories to scan for annotated Go files.
	// Entries ending in /... are walked recursively.
	Directories []string

	// RuntimeImport is the import path of the tracing runtime package the
	// generated wrappers link against. Empty selects DefaultRuntimeImport.
	RuntimeImport string
}

// Validate checks the configuration before a pass starts
func (c Config) Validate() error {
	if err := utils.SliceNotEmpty[string]("directories")(c.Directories); err != nil {
		return errors.ConfigurationError("directories", err.Error()).
			WithSuggestion("Pass at least one directory, or './...' to scan recursively")
	}

	if c.RuntimeImport != "" {
		if err := utils.ValidateImportPath("runtime import")(c.RuntimeImport); err != nil {
			return errors.ConfigurationError("runtime import", err.Error()).
				WithContext("runtime_import", c.RuntimeImport).
				WithSuggestion("Pass a plain import path, e.g. -runtime github.com/you/yourmod/tracing")
		}
	}

	return nil
}
