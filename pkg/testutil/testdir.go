package testutil

import (
	"os"
	"path/filepath"

	"svi.sh/pkg/must"
)

// TempDir creates a unique temporary directory and returns its path, with
// symlinks resolved with filepath.EvalSymlinks. It is removed when the test
// finishes.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "svi-test."))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// InTempDir is like TempDir, but also changes into the temporary directory.
// The working directory is restored when the test finishes.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(oldWd)) })
	return dir
}
