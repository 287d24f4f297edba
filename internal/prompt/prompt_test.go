package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"YES uppercase", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty takes default true", "\n", true, true},
		{"empty takes default false", "\n", false, false},
		{"eof takes default", "", true, true},
		{"answer without newline", "no", true, false},
		{"retry after garbage", "maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)
			got, err := p.Confirm("Add express?", tt.def)
			if err != nil {
				t.Fatalf("Confirm() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "? Add express?") {
				t.Errorf("question not printed: %q", out.String())
			}
		})
	}
}

func TestConfirmHint(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n\n"), &out)
	p.Confirm("a", true)
	p.Confirm("b", false)
	if !strings.Contains(out.String(), "(Y/n)") || !strings.Contains(out.String(), "(y/N)") {
		t.Errorf("hints missing: %q", out.String())
	}
}

func TestConfirmRetryMessage(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("what\nn\n"), &out)
	if _, err := p.Confirm("q", true); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), "? q") != 2 {
		t.Errorf("expected question twice: %q", out.String())
	}
	if !strings.Contains(out.String(), "Please answer yes or no.") {
		t.Errorf("missing retry hint: %q", out.String())
	}
}

func TestStatic(t *testing.T) {
	var c Confirmer = Static{}
	if got, _ := c.Confirm("x", true); !got {
		t.Error("Static.Confirm(true) = false")
	}
	if got, _ := c.Confirm("x", false); got {
		t.Error("Static.Confirm(false) = true")
	}
}
