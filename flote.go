// Package flote is the package-root API: elaborate Flote source into a
// ready-to-drive testbench (spec §6).
package flote

import (
	"os"

	"github.com/icarogabryel/flote/pkgs/builder"
	flerrors "github.com/icarogabryel/flote/pkgs/errors"
	"github.com/icarogabryel/flote/pkgs/parser"
	"github.com/icarogabryel/flote/pkgs/testbench"
)

// Elaborate runs the full lexer → parser → builder pipeline over
// source and wraps the result in a Testbench. Any phase failure is
// wrapped as an ElaborationError whose Cause is the original typed
// error, so callers can still branch on the root cause via
// errors.Is/kind inspection.
func Elaborate(source string) (*testbench.Testbench, error) {
	mod, err := parser.Parse(source)
	if err != nil {
		return nil, flerrors.NewElaborationError("failed to parse source", err)
	}

	comp, err := builder.Build(mod)
	if err != nil {
		return nil, flerrors.NewElaborationError("failed to build component", err)
	}

	return testbench.New(comp), nil
}

// ElaborateFile reads path and elaborates its contents.
func ElaborateFile(path string) (*testbench.Testbench, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, flerrors.NewElaborationError("failed to read "+path, err)
	}
	return Elaborate(string(source))
}
