package sidecar

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollefeld/presetdeck/internal/logging"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sidecar.db"), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoad_EmptyDatabase(t *testing.T) {
	s := openTestStore(t)

	state := s.Load()
	assert.NotNil(t, state.Folders)
	assert.NotNil(t, state.Presets)
	assert.Empty(t, state.Folders)
	assert.Empty(t, state.Presets)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	state := NewState()
	state.Folders["f1"] = Folder{
		ID: "f1", Name: "Work", ParentID: RootID,
		CreatedAt: now, LastModified: now, Color: "#ff8800",
	}
	state.Presets["Alpha"] = PresetMeta{
		CreatedAt: now, LastModified: now, FolderID: "f1", ImageURL: "data:image/png;base64,AA==",
	}

	require.NoError(t, s.Save(state))

	got := s.Load()
	assert.Equal(t, state.Folders, got.Folders)
	assert.Equal(t, state.Presets, got.Presets)
}

func TestSave_OverwritesWholeStructure(t *testing.T) {
	s := openTestStore(t)

	first := NewState()
	first.Folders["f1"] = Folder{ID: "f1", Name: "Old", ParentID: RootID}
	require.NoError(t, s.Save(first))

	second := NewState()
	second.Folders["f2"] = Folder{ID: "f2", Name: "New", ParentID: RootID}
	require.NoError(t, s.Save(second))

	got := s.Load()
	assert.NotContains(t, got.Folders, "f1")
	assert.Contains(t, got.Folders, "f2")
}

func TestLoad_MalformedMetadataResetsEmpty(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.put(keyMetadata, "{not json"))

	state := s.Load()
	assert.Empty(t, state.Folders)
	assert.Empty(t, state.Presets)
}

func TestFavorites_RoundTripAndOrder(t *testing.T) {
	s := openTestStore(t)

	assert.Nil(t, s.LoadFavorites())

	favorites := []string{"Gamma", "Alpha", "Beta"}
	require.NoError(t, s.SaveFavorites(favorites))

	// Stored order is insertion order, not sorted.
	assert.Equal(t, favorites, s.LoadFavorites())
}

func TestFavorites_MalformedResetsEmpty(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.put(keyFavorites, `{"oops":1}`))
	assert.Nil(t, s.LoadFavorites())
}
