package organizer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hollefeld/presetdeck/internal/host"
	"github.com/hollefeld/presetdeck/internal/logging"
	"github.com/hollefeld/presetdeck/internal/sidecar"
)

// testClock hands out strictly increasing timestamps so LastModified-based
// assertions are deterministic.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestSession(t *testing.T, presets ...host.Preset) *Session {
	t.Helper()
	store, err := sidecar.Open(filepath.Join(t.TempDir(), "sidecar.db"), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	s := NewSession(store, logging.Nop())
	s.now = (&testClock{t: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}).now
	s.SetPresets(presets)
	return s
}

func itemNames(items []Item) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

func findItem(t *testing.T, items []Item, name string) Item {
	t.Helper()
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("item %q not found in %v", name, itemNames(items))
	return Item{}
}
