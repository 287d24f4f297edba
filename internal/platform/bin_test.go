package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestNodeBin(t *testing.T) {
	want := filepath.Join("/proj/backend", "node_modules", ".bin", "tsc")
	if runtime.GOOS == "windows" {
		want += ".cmd"
	}
	if got := NodeBin("/proj/backend", "tsc"); got != want {
		t.Errorf("NodeBin() = %q, want %q", got, want)
	}
}
