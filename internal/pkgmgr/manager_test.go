package pkgmgr

import "testing"

func TestParseAgent(t *testing.T) {
	tests := []struct {
		ua          string
		wantManager Manager
		wantVersion string
	}{
		{"yarn/1.22.19 npm/? node/v20.11.0 linux x64", Yarn, "1.22.19"},
		{"npm/10.2.4 node/v20.11.0 darwin arm64 workspaces/false", NPM, "10.2.4"},
		{"pnpm/8.15.1 npm/? node/v20.11.0 linux x64", NPM, ""},
		{"", NPM, ""},
		{"yarn", Yarn, ""},
	}

	for _, tt := range tests {
		got := ParseAgent(tt.ua)
		if got.Manager != tt.wantManager {
			t.Errorf("ParseAgent(%q).Manager = %q, want %q", tt.ua, got.Manager, tt.wantManager)
		}
		gotVersion := ""
		if got.Version != nil {
			gotVersion = got.Version.String()
		}
		if gotVersion != tt.wantVersion {
			t.Errorf("ParseAgent(%q).Version = %q, want %q", tt.ua, gotVersion, tt.wantVersion)
		}
	}
}

func TestDetect(t *testing.T) {
	if got := Detect("yarn/4.0.2 npm/? node/v20.11.0"); got != Yarn {
		t.Errorf("Detect(yarn) = %q", got)
	}
	if got := Detect(" npm/10.2.4"); got != NPM {
		t.Errorf("Detect(npm) = %q", got)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		configured string
		ua         string
		want       Manager
		wantErr    bool
	}{
		{"", "yarn/1.22.19", Yarn, false},
		{"", "", NPM, false},
		{"npm", "yarn/1.22.19", NPM, false},
		{" Yarn ", "", Yarn, false},
		{"pnpm", "", "", true},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.configured, tt.ua)
		if (err != nil) != tt.wantErr {
			t.Errorf("Resolve(%q, %q) error = %v, wantErr %v", tt.configured, tt.ua, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.configured, tt.ua, got, tt.want)
		}
	}
}
