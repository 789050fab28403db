//go:build darwin

package catalog

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func createdTime(path string, info fs.FileInfo) time.Time {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return info.ModTime()
	}
	return time.Unix(st.Btimespec.Unix())
}
