package organizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollefeld/presetdeck/internal/host"
	"github.com/hollefeld/presetdeck/internal/sidecar"
)

func TestListChildren_EmptySidecarListsAllAtRoot(t *testing.T) {
	s := newTestSession(t,
		host.Preset{Name: "Alpha", Ref: "a1"},
		host.Preset{Name: "Beta", Ref: "b1"},
	)

	view := NewView()
	items := view.Apply(s.ListChildren(sidecar.RootID), nil)

	assert.Equal(t, []string{"Alpha", "Beta"}, itemNames(items))
	assert.Equal(t, "a1", findItem(t, items, "Alpha").Ref)
}

func TestListChildren_LazyStampingIsPersisted(t *testing.T) {
	s := newTestSession(t, host.Preset{Name: "Alpha", Ref: "a1"})

	first := findItem(t, s.ListChildren(sidecar.RootID), "Alpha")
	require.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, first.CreatedAt, first.LastModified)

	// A fresh session over the same store must see the same stamp, not a
	// re-stamped createdAt.
	reopened := NewSession(s.store, s.log)
	reopened.SetPresets(s.presets)
	second := findItem(t, reopened.ListChildren(sidecar.RootID), "Alpha")
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestListChildren_RootVsFolderMembership(t *testing.T) {
	s := newTestSession(t,
		host.Preset{Name: "Alpha", Ref: "a1"},
		host.Preset{Name: "Beta", Ref: "b1"},
	)

	work, err := s.CreateFolder("Work", sidecar.RootID)
	require.NoError(t, err)
	require.NoError(t, s.MoveItem("Alpha", work.ID))

	root := s.ListChildren(sidecar.RootID)
	assert.ElementsMatch(t, []string{"Work", "Beta"}, itemNames(root))

	inside := s.ListChildren(work.ID)
	assert.Equal(t, []string{"Alpha"}, itemNames(inside))
}

func TestListChildren_NoDuplicateIdentities(t *testing.T) {
	s := newTestSession(t,
		host.Preset{Name: "Alpha", Ref: "a1"},
		host.Preset{Name: "Beta", Ref: "b1"},
	)
	_, err := s.CreateFolder("Work", sidecar.RootID)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, it := range s.ListChildren(sidecar.RootID) {
		seen[it.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "identity %q listed more than once", id)
	}
}

func TestListChildren_OrphanMetadataLingersSilently(t *testing.T) {
	s := newTestSession(t, host.Preset{Name: "Alpha", Ref: "a1"})
	s.ListChildren(sidecar.RootID)

	// Alpha disappears from the host list; its metadata must survive but
	// the listing no longer shows it.
	s.SetPresets(nil)
	assert.Empty(t, s.ListChildren(sidecar.RootID))
	assert.Equal(t, 1, s.MetaCount())
}

func TestPruneOrphans(t *testing.T) {
	s := newTestSession(t,
		host.Preset{Name: "Alpha", Ref: "a1"},
		host.Preset{Name: "Beta", Ref: "b1"},
	)
	s.ListChildren(sidecar.RootID)
	s.ToggleFavorite("Alpha")
	s.ToggleFavorite("Beta")

	s.SetPresets([]host.Preset{{Name: "Beta", Ref: "b1"}})
	metaRemoved, favRemoved := s.PruneOrphans()

	assert.Equal(t, 1, metaRemoved)
	assert.Equal(t, 1, favRemoved)
	assert.Equal(t, 1, s.MetaCount())
	assert.Equal(t, []string{"Beta"}, s.Favorites().List())
}
