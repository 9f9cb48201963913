package organizer

import (
	"github.com/rs/zerolog"

	"github.com/hollefeld/presetdeck/internal/sidecar"
)

// Favorites is the independent registry of favorited preset names, kept in
// insertion order. It knows nothing about folders. Entries may reference
// names absent from the live list; they resolve again if the preset
// reappears.
type Favorites struct {
	names       []string
	store       *sidecar.Store
	log         zerolog.Logger
	subscribers []func()
}

func newFavorites(names []string, store *sidecar.Store, log zerolog.Logger) *Favorites {
	return &Favorites{names: names, store: store, log: log}
}

// Toggle adds the name if absent and removes it if present, persists the
// full set, notifies subscribers, and returns the new membership. Two
// toggles restore the original state.
func (f *Favorites) Toggle(name string) bool {
	idx := -1
	for i, n := range f.names {
		if n == name {
			idx = i
			break
		}
	}

	var member bool
	if idx == -1 {
		f.names = append(f.names, name)
		member = true
	} else {
		f.names = append(f.names[:idx], f.names[idx+1:]...)
		member = false
	}

	f.save()
	f.notify()
	return member
}

// Contains reports membership.
func (f *Favorites) Contains(name string) bool {
	for _, n := range f.names {
		if n == name {
			return true
		}
	}
	return false
}

// List returns the favorites in stored (insertion) order. Filtering against
// the live preset list happens at render time, not here.
func (f *Favorites) List() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Len returns the number of stored favorites, resolvable or not.
func (f *Favorites) Len() int {
	return len(f.names)
}

// OnChange registers a callback fired after every favorites mutation, so
// every favorites-derived surface of the same family can refresh itself.
func (f *Favorites) OnChange(fn func()) {
	f.subscribers = append(f.subscribers, fn)
}

func (f *Favorites) notify() {
	for _, fn := range f.subscribers {
		fn()
	}
}

func (f *Favorites) save() {
	if err := f.store.SaveFavorites(f.names); err != nil {
		f.log.Error().Err(err).Msg("persisting favorites failed")
	}
}

// prune drops entries whose names are not in live. Returns how many were
// removed; persists and notifies only when something changed.
func (f *Favorites) prune(live map[string]struct{}) int {
	kept := f.names[:0]
	removed := 0
	for _, n := range f.names {
		if _, ok := live[n]; ok {
			kept = append(kept, n)
		} else {
			removed++
		}
	}
	f.names = kept
	if removed > 0 {
		f.save()
		f.notify()
	}
	return removed
}
