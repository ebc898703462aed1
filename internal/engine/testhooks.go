package engine

import "os"

// copyFile and removeFile are package-level variables so tests can inject
// mid-operation filesystem failures.
var (
	copyFile   = fileCopy
	removeFile = os.Remove
)

// SetCopyFileForTests overrides the expansion copy routine during tests.
func SetCopyFileForTests(fn func(src, dst string) error) func() {
	previous := copyFile
	copyFile = fn
	return func() {
		copyFile = previous
	}
}

// SetRemoveFileForTests overrides the unlink routine during tests.
func SetRemoveFileForTests(fn func(path string) error) func() {
	previous := removeFile
	removeFile = fn
	return func() {
		removeFile = previous
	}
}
