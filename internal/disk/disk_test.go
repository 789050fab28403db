package disk

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSized(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
}

func TestFolderSize(t *testing.T) {
	root := t.TempDir()
	writeSized(t, filepath.Join(root, "a", "one.bin"), 1000)
	writeSized(t, filepath.Join(root, "a", "deep", "two.bin"), 2000)
	writeSized(t, filepath.Join(root, "b.bin"), 500)

	outside := t.TempDir()
	writeSized(t, filepath.Join(outside, "huge.bin"), 100000)
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link-dir")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "huge.bin"), filepath.Join(root, "link-file")))

	assert.Equal(t, uint64(3500), FolderSize(root))
}

func TestFolderSize_Missing(t *testing.T) {
	assert.Zero(t, FolderSize(filepath.Join(t.TempDir(), "missing")))
}

func TestProbe(t *testing.T) {
	root := t.TempDir()
	writeSized(t, filepath.Join(root, "big.bin"), 3*bytesPerMB+10)

	p := StartProbe(root)

	select {
	case <-p.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("probe did not finish")
	}
	assert.Equal(t, uint64(3), p.MB())
}

func TestFolderSize_SymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	writeSized(t, filepath.Join(target, "big.bin"), 3*bytesPerMB+10)

	link := filepath.Join(t.TempDir(), "tries")
	require.NoError(t, os.Symlink(target, link))

	assert.Equal(t, uint64(3*bytesPerMB+10), FolderSize(link))

	p := StartProbe(link)
	<-p.Done()
	assert.Equal(t, uint64(3), p.MB())
}

func TestProbe_SmallTreeReadsAsPending(t *testing.T) {
	root := t.TempDir()
	writeSized(t, filepath.Join(root, "tiny"), 10)

	p := StartProbe(root)
	<-p.Done()

	assert.Zero(t, p.MB())
	assert.Equal(t, Pending, FormatMB(p.MB()))
}

func TestFormatMB(t *testing.T) {
	assert.Equal(t, "---", FormatMB(0))
	assert.Equal(t, "1.0 MiB", FormatMB(1))
	assert.Equal(t, "1.5 GiB", FormatMB(1536))
}

func TestFreeMB(t *testing.T) {
	if _, ok := FreeMB(t.TempDir()); !ok {
		t.Skip("free space not available on this platform")
	}
	_, ok := FreeMB(filepath.Join(t.TempDir(), "missing"))
	assert.False(t, ok)
}
