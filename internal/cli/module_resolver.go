package cli

import (
	"os"

	"github.com/toyz/tracewrap/internal/errors"
	"github.com/toyz/tracewrap/internal/utils"
)

// DefaultRuntimeImport is the tracing runtime package generated wrappers
// import unless the run overrides it with -runtime.
const DefaultRuntimeImport = "github.com/toyz/tracewrap/pkg/tracing"

// ModuleResolver inspects the go.mod of the module being instrumented
type ModuleResolver struct {
	goMod *utils.GoModParser
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{
		goMod: utils.NewGoModParser(utils.NewFileReader()),
	}
}

// ResolveRuntimeImport picks the runtime import path for a pass
func (r *ModuleResolver) ResolveRuntimeImport(override string) string {
	if override != "" {
		return override
	}
	return DefaultRuntimeImport
}

// ResolveModule locates the go.mod governing the working directory and
// returns the module path together with the go.mod location.
func (r *ModuleResolver) ResolveModule() (moduleName, goModPath string, err error) {
	workDir, err := os.Getwd()
	if err != nil {
		return "", "", errors.WrapModuleError(".", err)
	}

	goModPath, err = r.goMod.FindGoModFile(workDir)
	if err != nil {
		return "", "", errors.WrapModuleError(workDir, err).
			WithSuggestion("Run tracewrap from inside the module you want to instrument")
	}

	moduleName, err = r.goMod.ParseModuleName(goModPath)
	if err != nil {
		return "", "", errors.WrapModuleError(workDir, err)
	}

	return moduleName, goModPath, nil
}

// RequiresRuntime reports whether the module at goModPath can import the
// runtime package: either it requires the runtime's module or it contains
// the package itself.
func (r *ModuleResolver) RequiresRuntime(goModPath, runtimeImport string) (bool, error) {
	return r.goMod.HasRequire(goModPath, runtimeImport)
}
