package cmdtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func requiredFlags(ps []Positional) []bool {
	out := make([]bool, len(ps))
	for i, p := range ps {
		out[i] = p.Required
	}
	return out
}

func positionals(required ...bool) []Positional {
	ps := make([]Positional, len(required))
	for i, r := range required {
		ps[i] = Positional{Name: string(rune('a' + i)), Required: r}
	}
	return ps
}

func TestNormalizeRequired(t *testing.T) {
	tests := []struct {
		name     string
		declared []bool
		want     []bool
	}{
		{"empty", nil, nil},
		{"none required", []bool{false, false}, []bool{false, false}},
		{"all required", []bool{true, true}, []bool{true, true}},
		{"gap before last required", []bool{false, true, false, false}, []bool{true, true, false, false}},
		{"last required defines cutoff", []bool{false, true, false, true}, []bool{true, true, true, true}},
		{"only first required", []bool{true, false, false}, []bool{true, false, false}},
		{"only last required", []bool{false, false, true}, []bool{true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRequired(positionals(tt.declared...))
			var gotFlags []bool
			if got != nil {
				gotFlags = requiredFlags(got)
			}
			if diff := cmp.Diff(tt.want, gotFlags); diff != "" {
				t.Errorf("NormalizeRequired mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeRequiredDoesNotMutateInput(t *testing.T) {
	in := positionals(false, true)
	_ = NormalizeRequired(in)
	if in[0].Required {
		t.Error("NormalizeRequired modified its input slice")
	}
}

func TestCommandNormalizesPositionals(t *testing.T) {
	n := Command("cp", "copy", nil, []Positional{
		{Name: "src"},
		{Name: "dst", Required: true},
		{Name: "mode"},
	})
	if got := requiredFlags(n.Positionals); !cmp.Equal(got, []bool{true, true, false}) {
		t.Errorf("required = %v, want [true true false]", got)
	}
	if n.Kind != KindCommand {
		t.Errorf("Kind = %v, want KindCommand", n.Kind)
	}
}

func TestPositionalUsage(t *testing.T) {
	got := PositionalUsage([]Positional{
		{Name: "a", Required: true},
		{Name: "b", Required: false},
	})
	if got != "<a> [b]" {
		t.Errorf("PositionalUsage = %q, want %q", got, "<a> [b]")
	}
}

func TestNodeUsage(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{
			Command("create", "", nil, []Positional{
				{Name: "name", Required: true},
				{Name: "path"},
			}),
			"create <name> [path]",
		},
		{Command("reinstall", "", nil, nil), "reinstall"},
		{Group("config", "", Command("get", "", nil, nil)), "config"},
	}

	for _, tt := range tests {
		if got := tt.node.Usage(); got != tt.want {
			t.Errorf("Usage() = %q, want %q", got, tt.want)
		}
	}
}

func TestRequiredCount(t *testing.T) {
	if got := RequiredCount(NormalizeRequired(positionals(false, true, false))); got != 2 {
		t.Errorf("RequiredCount = %d, want 2", got)
	}
}

func TestArgsAccessors(t *testing.T) {
	a := NewArgs(map[string]any{
		"name":  "demo",
		"yarn":  false,
		"port":  float64(5000),
		"force": true,
	})

	if a.String("name") != "demo" {
		t.Errorf("String(name) = %q", a.String("name"))
	}
	if a.Number("port") != 5000 {
		t.Errorf("Number(port) = %v", a.Number("port"))
	}
	if a.Bool("yarn") {
		t.Error("Bool(yarn) = true, want false")
	}
	if f := a.OptionalBool("force"); f == nil || !*f {
		t.Errorf("OptionalBool(force) = %v, want true", f)
	}
	if f := a.OptionalBool("missing"); f != nil {
		t.Errorf("OptionalBool(missing) = %v, want nil", *f)
	}
	if a.Has("missing") {
		t.Error("Has(missing) = true")
	}
}
