//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeManagerScript records every invocation in $SEMI_TEST_LOG and, on
// install, provides a node_modules/.bin/tsc that writes tsconfig.json.
const fakeManagerScript = `#!/bin/sh
echo "$(basename "$0") $* @ $(pwd)" >> "$SEMI_TEST_LOG"
if [ -n "$SEMI_TEST_FAIL" ] && echo "$*" | grep -q "$SEMI_TEST_FAIL"; then
  exit 4
fi
mkdir -p node_modules/.bin
cat > node_modules/.bin/tsc <<'TSC'
#!/bin/sh
echo "tsc $* @ $(pwd)" >> "$SEMI_TEST_LOG"
echo '{"compilerOptions":{"outDir":"dist"}}' > tsconfig.json
TSC
chmod +x node_modules/.bin/tsc
`

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME for the user config
	BinDir  string // fake npm and yarn, prepended to PATH
	WorkDir string // where projects are created
	LogFile string // one line per fake tool invocation
}

// setupTestEnv sandboxes HOME and PATH so no real package manager runs.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake package managers are shell scripts")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.LogFile = filepath.Join(env.HomeDir, "calls.log")

	for _, name := range []string{"npm", "yarn"} {
		path := filepath.Join(env.BinDir, name)
		if err := os.WriteFile(path, []byte(fakeManagerScript), 0755); err != nil {
			t.Fatalf("writing fake %s: %v", name, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("SEMI_TEST_LOG", env.LogFile)
	t.Setenv("npm_config_user_agent", "")

	return env
}

// calls returns the recorded tool invocations.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", e.LogFile, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
