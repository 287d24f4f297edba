package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/semi-framework/cli/internal/branding"
	"github.com/semi-framework/cli/internal/pkgjson"
	"github.com/semi-framework/cli/internal/platform"
	"github.com/semi-framework/cli/internal/prompt"
	"github.com/sirupsen/logrus"
)

// ErrAborted is returned when an existing project directory may not be
// deleted, either because --force=false was given or the user declined.
var ErrAborted = errors.New("project directory already exists")

// RootMarker is written to the project root and holds its absolute path.
const RootMarker = ".semiroot"

// Installer installs packages and runs project-local tools.
// *pkgmgr.Installer satisfies it.
type Installer interface {
	Install(ctx context.Context, dir string, packages []string, dev, forceYarn bool) error
	Exec(ctx context.Context, dir, name string, args ...string) error
}

// Options are the per-invocation choices of "create".
type Options struct {
	Name      string
	Path      string // optional; defaults to the slug of Name
	ForceYarn bool
	// Force is nil when the user did not decide: an existing directory
	// triggers a confirmation. false aborts, true deletes without asking.
	Force *bool
}

// ModuleDefaults are the preselected answers of the module prompts.
type ModuleDefaults struct {
	Express  bool
	Auth     bool
	Mongoose bool
	Redis    bool
}

// DefaultModules selects every module.
func DefaultModules() ModuleDefaults {
	return ModuleDefaults{Express: true, Auth: true, Mongoose: true, Redis: true}
}

// Result holds the outcome of a project generation.
type Result struct {
	Root     string
	Files    []string // slash-separated, relative to Root, in write order
	Modules  []string
	Warnings []string
}

// Project generates Semi projects below BaseDir.
type Project struct {
	BaseDir   string
	Installer Installer
	Confirmer prompt.Confirmer
	Defaults  ModuleDefaults
	Out       io.Writer
	Log       logrus.FieldLogger
}

// layout holds the absolute directories of one project.
type layout struct {
	Root       string
	Backend    string
	Frontend   string
	Src        string
	Components string
}

func newLayout(root string) layout {
	backend := filepath.Join(root, "backend")
	src := filepath.Join(backend, "src")
	return layout{
		Root:       root,
		Backend:    backend,
		Frontend:   filepath.Join(root, "frontend"),
		Src:        src,
		Components: filepath.Join(src, "Components"),
	}
}

// RootDir returns the directory a project named name would be created in.
// An absolute path is used as is, a relative one is joined to baseDir.
func RootDir(baseDir, name, path string) string {
	if path == "" {
		return filepath.Join(baseDir, Slugify(name))
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}

// Create generates a complete project. Child process failures are returned
// unchanged so their exit code survives.
func (p *Project) Create(ctx context.Context, opts Options) (*Result, error) {
	slug := Slugify(opts.Name)
	if slug == "" {
		return nil, fmt.Errorf("project name %q contains no letters or digits", opts.Name)
	}

	l := newLayout(RootDir(p.BaseDir, opts.Name, opts.Path))
	log := p.logger().WithFields(logrus.Fields{"project": slug, "root": l.Root})

	if err := p.prepareRoot(l.Root, opts.Force); err != nil {
		return nil, err
	}

	g := &generator{
		p:      p,
		ctx:    ctx,
		slug:   slug,
		layout: l,
		log:    log,
		result: &Result{Root: l.Root},
	}

	fmt.Fprintf(p.out(), "Creating %s project in %s\n", branding.DisplayName(), l.Root)

	steps := []func() error{
		func() error { return g.writeRoot(opts.ForceYarn) },
		g.writeBackend,
		g.writeFrontend,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	log.WithField("files", len(g.result.Files)).Debug("project generated")
	return g.result, nil
}

// prepareRoot makes sure root exists and is empty, asking before deleting.
func (p *Project) prepareRoot(root string, force *bool) error {
	if _, err := os.Stat(root); err == nil {
		granted := force != nil
		if force == nil {
			msg := fmt.Sprintf("The directory %q already exists. Do you want to delete its content?", root)
			granted, err = p.confirmer().Confirm(msg, false)
			if err != nil {
				return fmt.Errorf("asking for deletion of %s: %w", root, err)
			}
		}

		if force != nil && !*force {
			color.New(color.FgRed).Fprintf(p.out(),
				"Option \"force\" is set to \"false\" and directory %q already exists. Aborting!\n", root)
		}
		if (force != nil && !*force) || !granted {
			return fmt.Errorf("%w: %s", ErrAborted, root)
		}

		p.logger().WithField("dir", root).Debug("removing existing project directory")
		if err := os.RemoveAll(root); err != nil {
			return fmt.Errorf("removing %s: %w", root, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", root, err)
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating project directory %s: %w", root, err)
	}
	return nil
}

func (p *Project) out() io.Writer {
	if p.Out == nil {
		return io.Discard
	}
	return p.Out
}

func (p *Project) logger() logrus.FieldLogger {
	if p.Log == nil {
		return logrus.StandardLogger()
	}
	return p.Log
}

func (p *Project) confirmer() prompt.Confirmer {
	if p.Confirmer == nil {
		return prompt.Static{}
	}
	return p.Confirmer
}

// generator carries the state of one Create call.
type generator struct {
	p      *Project
	ctx    context.Context
	slug   string
	layout layout
	log    logrus.FieldLogger
	result *Result
}

func (g *generator) rel(path string) string {
	r, err := filepath.Rel(g.layout.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(r)
}

func (g *generator) mkdir(dir string) error {
	if err := os.Mkdir(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

func (g *generator) writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	g.record(path)
	return nil
}

func (g *generator) record(path string) {
	g.result.Files = append(g.result.Files, g.rel(path))
	g.log.WithField("file", g.rel(path)).Debug("wrote file")
}

// writeManifest writes a package.json and records schema problems as warnings.
func (g *generator) writeManifest(dir string, m *pkgjson.PackageJSON) error {
	path := filepath.Join(dir, "package.json")
	if err := pkgjson.Write(path, m); err != nil {
		return err
	}
	g.record(path)

	res, err := pkgjson.ValidateFile(path)
	if err != nil {
		g.result.Warnings = append(g.result.Warnings,
			fmt.Sprintf("Could not validate %s: %v", g.rel(path), err))
		return nil
	}
	for _, issue := range res.Issues {
		g.result.Warnings = append(g.result.Warnings, g.rel(path)+" "+issue.String())
	}
	return nil
}

func (g *generator) install(dir string, dev, forceYarn bool, packages ...string) error {
	fmt.Fprintf(g.p.out(), "Installing %v in %s\n", packages, g.rel(dir))
	return g.p.Installer.Install(g.ctx, dir, packages, dev, forceYarn)
}

func (g *generator) writeRoot(forceYarn bool) error {
	l := g.layout
	cli := branding.CLIName()

	if err := g.writeFile(filepath.Join(l.Root, RootMarker), []byte(l.Root)); err != nil {
		return err
	}

	if err := g.writeManifest(l.Root, &pkgjson.PackageJSON{
		Name:        g.slug,
		Version:     "0.0.0",
		Description: fmt.Sprintf("Full-Stack %s project.", g.slug),
		License:     "MIT",
		Prettier: &pkgjson.Prettier{
			TrailingComma: "all",
			TabWidth:      2,
			Semi:          true,
			SingleQuote:   false,
		},
		Scripts: map[string]string{
			"build":     cli + " build bundle",
			"cli":       cli,
			"delete":    cli + " delete bundle",
			"format":    cli + " format all",
			"reinstall": cli + " reinstall",
		},
	}); err != nil {
		return err
	}

	gitignore, err := render("gitignore", templateData{})
	if err != nil {
		return err
	}
	if err := g.writeFile(filepath.Join(l.Root, ".gitignore"), gitignore); err != nil {
		return err
	}

	return g.install(l.Root, true, forceYarn, branding.CLIPackage())
}

func (g *generator) writeBackend() error {
	l := g.layout
	cli := branding.CLIName()

	if err := g.mkdir(l.Backend); err != nil {
		return err
	}

	envFile := filepath.Join(l.Backend, ".env")
	if err := platform.WriteFile(envFile, []byte("DEBUG=1\n"), 0600); err != nil {
		return err
	}
	g.record(envFile)

	if err := g.mkdir(l.Src); err != nil {
		return err
	}

	if err := g.writeManifest(l.Backend, &pkgjson.PackageJSON{
		Name:        "backend",
		Version:     "0.0.0",
		Main:        "dist/index.js",
		Description: fmt.Sprintf("Backend of %s project.", g.slug),
		License:     "MIT",
		Scripts: map[string]string{
			"build":     cli + " build backend",
			"cli":       cli,
			"delete":    cli + " delete backend",
			"dev":       cli + " start backend",
			"format":    cli + " format backend",
			"reinstall": cli + " reinstall",
			"start":     "node .",
		},
	}); err != nil {
		return err
	}

	if err := g.install(l.Backend, true, false, "@types/node", branding.CLIPackage()); err != nil {
		return err
	}

	tsc := platform.NodeBin(l.Backend, "tsc")
	if err := g.p.Installer.Exec(g.ctx, l.Backend, tsc, "--init", "--outDir", "dist"); err != nil {
		return err
	}

	if err := g.writeFile(filepath.Join(l.Src, "index.ts"), nil); err != nil {
		return err
	}
	if err := g.mkdir(l.Components); err != nil {
		return err
	}

	if err := g.install(l.Backend, false, false, branding.UtilsPackage()); err != nil {
		return err
	}

	sel, err := g.selectModules()
	if err != nil {
		return err
	}
	return g.writeModules(sel)
}

func (g *generator) writeFrontend() error {
	return g.mkdir(g.layout.Frontend)
}
