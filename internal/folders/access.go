package folders

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// WriteAccess is the outcome of probing the watched folders.
type WriteAccess struct {
	CanWrite bool
	Reason   string
}

// CheckWriteAccess verifies both watched folders accept writes. It fails
// closed: an unconfigured path is reported as a configuration error without
// touching disk. Each configured folder is probed with a uniquely-named file
// that is created and immediately removed.
//
// The check is advisory. Permissions can change between this probe and a
// later operation, so the lifecycle engine classifies the same failures
// again on its own filesystem calls.
func (s Set) CheckWriteAccess() WriteAccess {
	for _, folder := range []Folder{s.Import, s.Failed} {
		if !folder.Configured() {
			return WriteAccess{Reason: fmt.Sprintf("%s path is not configured", folder.Label)}
		}
	}
	for _, folder := range []Folder{s.Import, s.Failed} {
		if reason := probeFolder(folder); reason != "" {
			return WriteAccess{Reason: reason}
		}
	}
	return WriteAccess{CanWrite: true}
}

func probeFolder(folder Folder) string {
	info, err := os.Stat(folder.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Sprintf("%s does not exist at %s", folder.Label, folder.Path)
		}
		return fmt.Sprintf("%s is not accessible: %v", folder.Label, err)
	}
	if !info.IsDir() {
		return fmt.Sprintf("%s at %s is not a directory", folder.Label, folder.Path)
	}
	if err := unix.Access(folder.Path, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Sprintf("%s at %s denies write permission", folder.Label, folder.Path)
	}

	probe := folder.Join(".shuttle-probe-" + uuid.NewString())
	file, err := os.OpenFile(probe, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrPermission):
			return fmt.Sprintf("%s at %s denies write permission", folder.Label, folder.Path)
		case errors.Is(err, fs.ErrNotExist):
			return fmt.Sprintf("%s does not exist at %s", folder.Label, folder.Path)
		default:
			return fmt.Sprintf("%s write probe failed: %v", folder.Label, err)
		}
	}
	_ = file.Close()
	if err := os.Remove(probe); err != nil {
		return fmt.Sprintf("%s probe cleanup failed: %v", folder.Label, err)
	}
	return ""
}
