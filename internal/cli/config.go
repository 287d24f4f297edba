package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/semi-framework/cli/internal/cmdtree"
	"github.com/semi-framework/cli/internal/config"
	"github.com/semi-framework/cli/internal/pkgmgr"
	"github.com/sirupsen/logrus"
)

func (a *app) configNode() cmdtree.Node {
	return cmdtree.Group("config", "Manage user settings in "+config.FilePath(),
		cmdtree.Command("get", "Get a configuration value", a.runConfigGet,
			[]cmdtree.Positional{{Name: "key", Required: true, Description: "Setting name, e.g. package_manager"}}),
		cmdtree.Command("set", "Set a configuration value", a.runConfigSet,
			[]cmdtree.Positional{
				{Name: "key", Required: true, Description: "Setting name"},
				{Name: "value", Required: true, Description: "New value"},
			}),
		cmdtree.Command("list", "List all configuration values", a.runConfigList, nil),
	)
}

func (a *app) runConfigGet(_ context.Context, args cmdtree.Args) error {
	fmt.Fprintln(a.out, config.Get(args.String("key")))
	return nil
}

func (a *app) runConfigSet(_ context.Context, args cmdtree.Args) error {
	key, value := args.String("key"), args.String("value")
	if err := validateSetting(key, value); err != nil {
		return err
	}
	if err := config.Set(key, value); err != nil {
		return fmt.Errorf("setting config key %q: %w", key, err)
	}
	fmt.Fprintf(a.out, "Set %s = %s\n", key, value)
	return nil
}

func (a *app) runConfigList(_ context.Context, _ cmdtree.Args) error {
	for _, line := range config.All() {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// validateSetting rejects values of known keys that later commands could not use.
func validateSetting(key, value string) error {
	switch key {
	case config.KeyPackageManager:
		_, err := pkgmgr.Resolve(value, "")
		return err
	case config.KeyLogLevel:
		if _, err := logrus.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	case config.KeyModulesExpress, config.KeyModulesAuth, config.KeyModulesMongo, config.KeyModulesRedis:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
	}
	return nil
}
