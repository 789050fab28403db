//go:build linux || darwin || freebsd

package disk

import "golang.org/x/sys/unix"

// FreeMB returns the space available to unprivileged users on the
// filesystem holding path.
func FreeMB(path string) (uint64, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, false
	}
	return uint64(st.Bavail) * uint64(st.Bsize) / bytesPerMB, true
}
