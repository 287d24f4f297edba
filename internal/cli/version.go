package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/semi-framework/cli/internal/branding"
	"github.com/semi-framework/cli/internal/cmdtree"
)

func (a *app) versionNode() cmdtree.Node {
	return cmdtree.Command("version", "Print version information", a.runVersion, nil,
		cmdtree.Flag{Name: "short", Type: cmdtree.Bool, Default: false, Description: "Print version number only"},
		cmdtree.Flag{Name: "json", Type: cmdtree.Bool, Default: false, Description: "Print version info as JSON"},
	)
}

func (a *app) runVersion(_ context.Context, args cmdtree.Args) error {
	if args.Bool("short") {
		fmt.Fprintln(a.out, buildVersion)
		return nil
	}

	if args.Bool("json") {
		info := map[string]string{
			"version": buildVersion,
			"commit":  buildCommit,
			"date":    buildDate,
		}
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		fmt.Fprintln(a.out, string(out))
		return nil
	}

	fmt.Fprintf(a.out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
	return nil
}
