package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSaveLoadDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	s := NewFileStore(path)

	loaded, err := s.LoadIndex()
	require.NoError(t, err)
	assert.Nil(t, loaded, "loading before any save should be a no-op")

	want := []byte(`{"m":16}`)
	require.NoError(t, s.SaveIndex(want))

	got, err := s.LoadIndex()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.DeleteIndex())
	loaded, err = s.LoadIndex()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	assert.NoError(t, s.DeleteIndex(), "deleting a missing snapshot is not an error")
	assert.NoError(t, s.Close())
}

func TestFileStoreOverwritesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	s := NewFileStore(path)

	require.NoError(t, s.SaveIndex([]byte("first")))
	require.NoError(t, s.SaveIndex([]byte("second")))

	got, err := s.LoadIndex()
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}
