package engine

import (
	"io"
	"os"
)

// fileCopy streams src to dst with default permissions (0o644). The
// destination is created exclusively; a name that already exists fails the
// copy instead of overwriting, so rollback never touches a file this
// attempt did not create.
func fileCopy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
