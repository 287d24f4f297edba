package cli

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/semi-framework/cli/internal/branding"
	"github.com/semi-framework/cli/internal/cmdtree"
	"github.com/semi-framework/cli/internal/config"
	"github.com/semi-framework/cli/internal/prompt"
	"github.com/semi-framework/cli/internal/scaffold"
)

func (a *app) createNode() cmdtree.Node {
	return cmdtree.Command("create", "Create a new "+branding.DisplayName()+" project", a.runCreate,
		[]cmdtree.Positional{
			{Name: "name", Required: true, Type: cmdtree.String, Description: "Name of the project"},
			{Name: "path", Type: cmdtree.String, Description: "Target directory, defaults to the slugified name"},
		},
		cmdtree.Flag{Name: "yarn", Short: "y", Type: cmdtree.Bool, Default: false,
			Description: "Install the root dependencies with yarn"},
		cmdtree.Flag{Name: "force", Short: "f", Type: cmdtree.Bool,
			Description: "Delete an existing project directory without asking; --force=false aborts instead"},
	)
}

func (a *app) runCreate(ctx context.Context, args cmdtree.Args) error {
	inst, err := a.installer()
	if err != nil {
		return err
	}

	p := &scaffold.Project{
		BaseDir:   a.workDir,
		Installer: inst,
		Confirmer: prompt.New(a.in, a.out),
		Defaults: scaffold.ModuleDefaults{
			Express:  config.GetBool(config.KeyModulesExpress),
			Auth:     config.GetBool(config.KeyModulesAuth),
			Mongoose: config.GetBool(config.KeyModulesMongo),
			Redis:    config.GetBool(config.KeyModulesRedis),
		},
		Out: a.out,
		Log: a.log,
	}

	res, err := p.Create(ctx, scaffold.Options{
		Name:      args.String("name"),
		Path:      args.String("path"),
		ForceYarn: args.Bool("yarn"),
		Force:     args.OptionalBool("force"),
	})
	if errors.Is(err, scaffold.ErrAborted) {
		return &cmdtree.ExitError{Code: 1, Err: err}
	}
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		a.log.Warn(w)
	}
	color.New(color.FgGreen).Fprintf(a.out, "Created %s in %s\n", args.String("name"), res.Root)
	return nil
}
