package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.xdm")
	want := []byte{12, 0, 0, 0, 0, 0, 0, 0, 42}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, want, r.Bytes())
	require.Equal(t, len(want), r.Len())

	require.NoError(t, r.Close())
	require.Nil(t, r.Bytes())
	require.ErrorIs(t, r.Close(), ErrClosed)
}

func TestOpen_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xdm")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 0, r.Len())
	require.False(t, r.Mapped())
	require.NoError(t, r.Close())
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xdm"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
