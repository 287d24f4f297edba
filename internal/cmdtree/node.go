package cmdtree

import (
	"context"
	"strings"
)

// ValueType is the declared type of a positional argument or flag.
type ValueType int

const (
	String ValueType = iota
	Bool
	Number
)

// String returns the type name shown in help output.
func (t ValueType) String() string {
	switch t {
	case Bool:
		return "boolean"
	case Number:
		return "number"
	default:
		return "string"
	}
}

// Kind tags a Node as either a leaf command or a group.
type Kind int

const (
	KindCommand Kind = iota
	KindGroup
)

// Handler runs a leaf command with its parsed arguments.
type Handler func(ctx context.Context, args Args) error

// Positional is a value identified by its position after the command name.
type Positional struct {
	Name        string
	Required    bool
	Type        ValueType
	Description string
}

// Flag is a named option. A nil Default means the flag is absent from Args
// unless it was given on the command line.
type Flag struct {
	Name        string
	Short       string
	Type        ValueType
	Default     any
	Description string
}

// Node is one entry of the command tree. Handler, Positionals and Flags are
// only meaningful for KindCommand; Children only for KindGroup.
type Node struct {
	Kind        Kind
	Name        string
	Description string

	Handler     Handler
	Positionals []Positional
	Flags       []Flag

	Children []Node
}

// Command builds a leaf node. Positionals are copied and normalized so that
// required ones form a contiguous prefix.
func Command(name, description string, handler Handler, positionals []Positional, flags ...Flag) Node {
	return Node{
		Kind:        KindCommand,
		Name:        name,
		Description: description,
		Handler:     handler,
		Positionals: NormalizeRequired(positionals),
		Flags:       append([]Flag(nil), flags...),
	}
}

// Group builds a namespace node owning children.
func Group(name, description string, children ...Node) Node {
	return Node{
		Kind:        KindGroup,
		Name:        name,
		Description: description,
		Children:    append([]Node(nil), children...),
	}
}

// NormalizeRequired returns a copy of ps where every positional up to and
// including the last one marked required is required and every later one is
// optional. Non-prefix declarations are rewritten, never rejected.
func NormalizeRequired(ps []Positional) []Positional {
	if len(ps) == 0 {
		return nil
	}

	last := -1
	for i, p := range ps {
		if p.Required {
			last = i
		}
	}

	out := make([]Positional, len(ps))
	for i, p := range ps {
		p.Required = i <= last
		out[i] = p
	}
	return out
}

// RequiredCount returns the length of the required prefix.
func RequiredCount(ps []Positional) int {
	n := 0
	for _, p := range ps {
		if p.Required {
			n++
		}
	}
	return n
}

// PositionalUsage renders positionals as "<required> [optional]".
func PositionalUsage(ps []Positional) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		if p.Required {
			parts[i] = "<" + p.Name + ">"
		} else {
			parts[i] = "[" + p.Name + "]"
		}
	}
	return strings.Join(parts, " ")
}

// Usage returns the cobra Use line for the node, e.g. "create <name> [path]".
func (n Node) Usage() string {
	if n.Kind == KindGroup {
		return n.Name
	}
	if u := PositionalUsage(n.Positionals); u != "" {
		return n.Name + " " + u
	}
	return n.Name
}
