package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/semi-framework/cli/internal/cmdtree"
	"github.com/semi-framework/cli/internal/pkgjson"
)

func (a *app) reinstallNode() cmdtree.Node {
	return cmdtree.Command("reinstall",
		"Delete node_modules and lock files in the current directory and install again",
		a.runReinstall, nil)
}

func (a *app) runReinstall(ctx context.Context, _ cmdtree.Args) error {
	manifest := filepath.Join(a.workDir, "package.json")
	if _, err := pkgjson.ParseFile(manifest); err != nil {
		return fmt.Errorf("%s is not a package directory: %w", a.workDir, err)
	}

	inst, err := a.installer()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Reinstalling dependencies in %s with %s\n", a.workDir, inst.Manager)
	return inst.Reinstall(ctx, a.workDir)
}
