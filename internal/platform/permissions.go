package platform

import (
	"os"
)

// Permission bits for the config directory and the config file, which may
// hold api keys.
const (
	DirPermSecure  os.FileMode = 0700
	FilePermSecure os.FileMode = 0600
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if Detect().Family == Windows {
		return nil
	}
	return os.Chmod(path, mode)
}
