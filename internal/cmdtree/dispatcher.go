package cmdtree

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Info describes the root scope.
type Info struct {
	Name    string
	Short   string
	Long    string
	Version string
}

// Dispatcher owns the cobra tree built from a node list.
type Dispatcher struct {
	root *cobra.Command
}

// New builds the cobra hierarchy for nodes under a root command described by
// info. Only the root carries the version flag.
func New(info Info, nodes ...Node) *Dispatcher {
	root := &cobra.Command{
		Use:           info.Name,
		Short:         info.Short,
		Long:          info.Long,
		Version:       info.Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          showHelp,
	}
	// Help for an empty argv bypasses Execute, which would add these lazily.
	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()
	addNodes(root, nodes)
	return &Dispatcher{root: root}
}

// Root exposes the root command for persistent flags and hooks.
func (d *Dispatcher) Root() *cobra.Command {
	return d.root
}

// SetOutput redirects help, usage and version output.
func (d *Dispatcher) SetOutput(out, errOut io.Writer) {
	d.root.SetOut(out)
	d.root.SetErr(errOut)
}

// Run parses argv (without the program name) and invokes the matched
// handler. An empty argv prints help and runs nothing.
func (d *Dispatcher) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return d.root.Help()
	}
	d.root.SetArgs(argv)
	return d.root.ExecuteContext(ctx)
}

func showHelp(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

func addNodes(parent *cobra.Command, nodes []Node) {
	for _, n := range nodes {
		switch n.Kind {
		case KindGroup:
			group := &cobra.Command{
				Use:   n.Usage(),
				Short: n.Description,
				Args:  cobra.NoArgs,
				RunE:  showHelp,
			}
			addNodes(group, n.Children)
			parent.AddCommand(group)
		default:
			parent.AddCommand(newLeaf(n))
		}
	}
}

func newLeaf(n Node) *cobra.Command {
	cmd := &cobra.Command{
		Use:   n.Usage(),
		Short: n.Description,
		Long:  longHelp(n),
		Args:  positionalArgs(n.Positionals),
		RunE: func(cmd *cobra.Command, raw []string) error {
			args, err := collect(n, cmd.Flags(), raw)
			if err != nil {
				return err
			}
			// Past this point failures belong to the handler, not the schema.
			cmd.SilenceUsage = true
			if n.Handler == nil {
				return nil
			}
			return n.Handler(cmd.Context(), args)
		},
	}

	for _, f := range n.Flags {
		registerFlag(cmd.Flags(), f)
	}
	return cmd
}

func positionalArgs(ps []Positional) cobra.PositionalArgs {
	if len(ps) == 0 {
		return cobra.NoArgs
	}
	return cobra.RangeArgs(RequiredCount(ps), len(ps))
}

func longHelp(n Node) string {
	if len(n.Positionals) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(n.Description)
	b.WriteString("\n\nArguments:\n")
	width := 0
	for _, p := range n.Positionals {
		if len(p.Name) > width {
			width = len(p.Name)
		}
	}
	for _, p := range n.Positionals {
		req := "optional"
		if p.Required {
			req = "required"
		}
		fmt.Fprintf(&b, "  %-*s  %s (%s, %s)\n", width, p.Name, p.Description, p.Type, req)
	}
	return strings.TrimRight(b.String(), "\n")
}

func registerFlag(fs *pflag.FlagSet, f Flag) {
	switch f.Type {
	case Bool:
		def, _ := f.Default.(bool)
		fs.BoolP(f.Name, f.Short, def, f.Description)
	case Number:
		fs.Float64P(f.Name, f.Short, toFloat(f.Default), f.Description)
	default:
		def, _ := f.Default.(string)
		fs.StringP(f.Name, f.Short, def, f.Description)
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// collect converts raw positionals and parsed flags into Args.
func collect(n Node, fs *pflag.FlagSet, raw []string) (Args, error) {
	values := make(map[string]any, len(n.Positionals)+len(n.Flags))

	for i, p := range n.Positionals {
		if i >= len(raw) {
			break
		}
		v, err := parseValue(p.Type, raw[i])
		if err != nil {
			return Args{}, fmt.Errorf("invalid value %q for argument %s: %w", raw[i], p.Name, err)
		}
		values[p.Name] = v
	}

	for _, f := range n.Flags {
		if f.Default == nil && !fs.Changed(f.Name) {
			continue
		}
		var (
			v   any
			err error
		)
		switch f.Type {
		case Bool:
			v, err = fs.GetBool(f.Name)
		case Number:
			v, err = fs.GetFloat64(f.Name)
		default:
			v, err = fs.GetString(f.Name)
		}
		if err != nil {
			return Args{}, fmt.Errorf("reading flag --%s: %w", f.Name, err)
		}
		values[f.Name] = v
	}

	return NewArgs(values), nil
}

func parseValue(t ValueType, s string) (any, error) {
	switch t {
	case Bool:
		return strconv.ParseBool(s)
	case Number:
		return strconv.ParseFloat(s, 64)
	default:
		return s, nil
	}
}

// ExitError attaches a process exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the exit code carried by err.
func (e *ExitError) ExitCode() int { return e.Code }

// ExitCode maps err to a process exit code: 0 for nil, the code of the first
// error in the chain implementing ExitCode() int, otherwise 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) && coder.ExitCode() != 0 {
		return coder.ExitCode()
	}
	return 1
}
