package organizer

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hollefeld/presetdeck/internal/host"
	"github.com/hollefeld/presetdeck/internal/sidecar"
)

// Session holds one organizer instance's in-memory join of the host's live
// preset list and the sidecar state. The sidecar is read once when the
// session opens; every mutating command goes through the dispatcher methods
// in dispatch.go and ends in exactly one commit.
type Session struct {
	store     *sidecar.Store
	log       zerolog.Logger
	state     sidecar.State
	favorites *Favorites
	presets   []host.Preset

	now func() time.Time
}

// NewSession loads the sidecar and favorites and returns a ready session.
// The live preset list starts empty; set it via SetPresets once the host
// has answered.
func NewSession(store *sidecar.Store, log zerolog.Logger) *Session {
	return &Session{
		store:     store,
		log:       log,
		state:     store.Load(),
		favorites: newFavorites(store.LoadFavorites(), store, log),
		now:       time.Now,
	}
}

// SetPresets replaces the live preset list. Metadata for presets that have
// disappeared is kept (orphans linger until an explicit prune).
func (s *Session) SetPresets(presets []host.Preset) {
	s.presets = presets
}

// Presets returns the current live preset list.
func (s *Session) Presets() []host.Preset {
	return s.presets
}

// Favorites returns the session's favorites registry.
func (s *Session) Favorites() *Favorites {
	return s.favorites
}

// Folder looks up a folder record by id.
func (s *Session) Folder(id string) (sidecar.Folder, bool) {
	f, ok := s.state.Folders[id]
	return f, ok
}

// FolderCount returns the number of folder records.
func (s *Session) FolderCount() int {
	return len(s.state.Folders)
}

// MetaCount returns the number of preset metadata records.
func (s *Session) MetaCount() int {
	return len(s.state.Presets)
}

// MetaNames returns the names of all preset metadata records, live or not.
func (s *Session) MetaNames() []string {
	names := make([]string, 0, len(s.state.Presets))
	for name := range s.state.Presets {
		names = append(names, name)
	}
	return names
}

// commit flushes the full metadata structure. One call per logical command;
// bulk commands batch all their item mutations behind a single commit.
func (s *Session) commit() error {
	if err := s.store.Save(s.state); err != nil {
		s.log.Error().Err(err).Msg("persisting sidecar metadata failed")
		return err
	}
	return nil
}
