package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/semi-framework/cli/internal/branding"
	"github.com/semi-framework/cli/internal/cmdtree"
	"github.com/semi-framework/cli/internal/config"
	"github.com/semi-framework/cli/internal/pkgmgr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// app is the environment every command runs against.
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	workDir string
	getenv  func(string) string
	runner  pkgmgr.Runner
	log     *logrus.Logger
	verbose bool
}

func newApp(in io.Reader, out, errOut io.Writer, workDir string) *app {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &app{
		in:      in,
		out:     out,
		errOut:  errOut,
		workDir: workDir,
		getenv:  os.Getenv,
		runner:  &pkgmgr.ExecRunner{Stdout: out, Stderr: errOut, Log: log},
		log:     log,
	}
}

// Execute runs the command line with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdin, os.Stdout, os.Stderr, workDir)
	return a.dispatcher().Run(ctx, os.Args[1:])
}

func (a *app) dispatcher() *cmdtree.Dispatcher {
	d := cmdtree.New(cmdtree.Info{
		Name:  branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates full-stack TypeScript projects with an express backend
and optional auth, mongoose and redis components, and keeps their dependencies installed.`,
		Version: buildVersion,
	},
		a.createNode(),
		a.reinstallNode(),
		a.versionNode(),
		a.configNode(),
	)
	d.SetOutput(a.out, a.errOut)

	root := d.Root()
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable debug logging")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := a.setupLogging(); err != nil {
			cmd.SilenceUsage = true
			return err
		}
		return nil
	}
	return d
}

// setupLogging loads the user config and sets the log level from --verbose
// or the log_level setting. A malformed config file fails every command.
func (a *app) setupLogging() error {
	if err := config.Load(); err != nil {
		return err
	}

	level := logrus.InfoLevel
	if raw := config.Get(config.KeyLogLevel); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", config.KeyLogLevel, raw, err)
		}
		level = parsed
	}
	if a.verbose {
		level = logrus.DebugLevel
	}
	a.log.SetLevel(level)
	return nil
}

// installer resolves the package manager from config and the user agent of
// the invoking npm or yarn process.
func (a *app) installer() (*pkgmgr.Installer, error) {
	userAgent := a.getenv(pkgmgr.UserAgentEnv)
	mgr, err := pkgmgr.Resolve(config.Get(config.KeyPackageManager), userAgent)
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{"manager": mgr}
	if agent := pkgmgr.ParseAgent(userAgent); agent.Manager == mgr && agent.Version != nil {
		fields["version"] = agent.Version.String()
	}
	a.log.WithFields(fields).Debug("resolved package manager")

	return &pkgmgr.Installer{Manager: mgr, Runner: a.runner}, nil
}
