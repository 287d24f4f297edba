package platform

import (
	"path/filepath"
	"runtime"
)

// NodeBin returns the path of a project-local binary installed by npm or
// yarn under dir/node_modules/.bin. On Windows the runnable shim is <name>.cmd.
func NodeBin(dir, name string) string {
	if runtime.GOOS == "windows" {
		name += ".cmd"
	}
	return filepath.Join(dir, "node_modules", ".bin", name)
}
