package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "semi-cli"},
		{"HomeDir", HomeDir(), ".semi"},
		{"EnvPrefix", EnvPrefix(), "SEMI"},
		{"CLIPackage", CLIPackage(), "@semi-framework/cli"},
		{"UtilsPackage", UtilsPackage(), "@semi-framework/utils"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "SEMI_LOG_LEVEL" {
		t.Errorf("EnvVar(log_level) = %q, want SEMI_LOG_LEVEL", got)
	}
}
