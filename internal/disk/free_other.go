//go:build !linux && !darwin && !freebsd

package disk

// FreeMB is unsupported on this platform.
func FreeMB(string) (uint64, bool) {
	return 0, false
}
