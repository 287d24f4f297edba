package pkgmgr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Lock files and directories removed by Reinstall.
var reinstallTargets = []string{"node_modules", "package-lock.json", "yarn.lock"}

// Installer drives one package manager through a Runner.
type Installer struct {
	Manager Manager
	Runner  Runner
}

// Install adds packages to the project in dir. Yarn (or forced yarn) uses
// "add", npm uses "install"; dev appends "-D".
func (i *Installer) Install(ctx context.Context, dir string, packages []string, dev, forceYarn bool) error {
	m := i.Manager
	if forceYarn {
		m = Yarn
	}

	args := append([]string{m.installVerb()}, packages...)
	if dev {
		args = append(args, "-D")
	}
	return i.run(ctx, dir, string(m), args...)
}

// Exec runs a project-local tool such as ./node_modules/.bin/tsc.
func (i *Installer) Exec(ctx context.Context, dir, name string, args ...string) error {
	return i.run(ctx, dir, name, args...)
}

// Reinstall removes node_modules and lock files in dir, then runs a plain
// install with the configured manager.
func (i *Installer) Reinstall(ctx context.Context, dir string) error {
	for _, name := range reinstallTargets {
		path := filepath.Join(dir, name)
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return i.run(ctx, dir, string(i.Manager), "install")
}

func (i *Installer) run(ctx context.Context, dir, name string, args ...string) error {
	code, err := i.Runner.Run(ctx, dir, name, args...)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ProcessError{
			Command: strings.Join(append([]string{name}, args...), " "),
			Code:    code,
		}
	}
	return nil
}
