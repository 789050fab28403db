// Package disk measures how much space the tries root uses and how much is
// left on its filesystem.
package disk

import (
	"io/fs"
	"path/filepath"
	"sync/atomic"

	"github.com/tassiovirginio/try-rs/internal/logging"
)

const bytesPerMB = 1024 * 1024

// FolderSize returns the total size in bytes of the regular files under
// root. A symlinked root is resolved first; symlinks below it are neither
// followed nor counted. Unreadable parts of the tree are skipped.
func FolderSize(root string) uint64 {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	var total uint64
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += uint64(info.Size())
		return nil
	})
	return total
}

// Probe computes the size of a directory tree once, in the background.
type Probe struct {
	mb   atomic.Uint64
	done chan struct{}
}

// StartProbe launches the computation for root and returns immediately.
// The goroutine is never cancelled; if nobody reads the result it is simply
// dropped.
func StartProbe(root string) *Probe {
	p := &Probe{done: make(chan struct{})}
	go func() {
		size := FolderSize(root)
		p.mb.Store(size / bytesPerMB)
		logging.Debug("size probe finished", "root", root, "bytes", size)
		close(p.done)
	}()
	return p
}

// MB returns the computed size in whole megabytes, or 0 while the probe is
// still running. It never blocks.
func (p *Probe) MB() uint64 {
	return p.mb.Load()
}

// Done is closed once the result has been stored.
func (p *Probe) Done() <-chan struct{} {
	return p.done
}
