package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesAndTruncates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	ctx := context.Background()

	require.NoError(t, WriteFile(ctx, path, []byte("first")))
	require.NoError(t, WriteFile(ctx, path, []byte("2")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "2", string(got), "a second write must fully replace the first")
}

func TestWriteFile_DestinationNotWritable(t *testing.T) {
	t.Parallel()

	// A directory at the destination path makes os.Create fail.
	path := t.TempDir()

	err := WriteFile(context.Background(), path, []byte("data"))
	require.Error(t, err)
	require.Contains(t, err.Error(), path)
}

func TestWriteFile_MissingParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "no-such-dir", "out.json")

	err := WriteFile(context.Background(), path, []byte("data"))
	require.Error(t, err, "parent directories are not created on the caller's behalf")
}
