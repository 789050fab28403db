package disk

import (
	"github.com/dustin/go-humanize"
)

// Pending is shown while a size is not known yet.
const Pending = "---"

// FormatMB renders a megabyte count for the disk panel. Zero means the value
// is not available yet.
func FormatMB(mb uint64) string {
	if mb == 0 {
		return Pending
	}
	return humanize.IBytes(mb * bytesPerMB)
}
