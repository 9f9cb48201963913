package organizer

import "github.com/hollefeld/presetdeck/internal/sidecar"

// ListChildren returns the contents of one folder: every folder whose
// ParentID equals folderID, plus every live preset assigned to it. Presets
// without a folder assignment belong to the root listing only.
//
// Presets seen for the first time get metadata stamped with
// createdAt == lastModified == now, and the stamping is persisted before the
// listing is returned so a later call cannot re-stamp a fresh createdAt.
//
// Ordering of the result is not defined here; the View decides it.
func (s *Session) ListChildren(folderID string) []Item {
	s.ensureMetadata()

	items := make([]Item, 0, len(s.presets))
	for _, f := range s.state.Folders {
		if f.ParentID == folderID {
			items = append(items, folderItem(f))
		}
	}
	for _, p := range s.presets {
		meta := s.state.Presets[p.Name]
		inFolder := meta.FolderID == folderID
		atRoot := meta.FolderID == "" && folderID == sidecar.RootID
		if inFolder || atRoot {
			items = append(items, presetItem(p.Name, p.Ref, meta))
		}
	}
	return items
}

// ensureMetadata lazily creates metadata for presets observed for the first
// time, committing once when anything was stamped.
func (s *Session) ensureMetadata() {
	now := s.now()
	stamped := false
	for _, p := range s.presets {
		if _, ok := s.state.Presets[p.Name]; !ok {
			s.state.Presets[p.Name] = sidecar.PresetMeta{CreatedAt: now, LastModified: now}
			stamped = true
		}
	}
	if stamped {
		s.commit()
	}
}

// PruneOrphans removes metadata records and favorites whose preset names no
// longer resolve in the live list. Never called automatically; the gc
// subcommand is the only caller.
func (s *Session) PruneOrphans() (metaRemoved, favoritesRemoved int) {
	live := make(map[string]struct{}, len(s.presets))
	for _, p := range s.presets {
		live[p.Name] = struct{}{}
	}

	for name := range s.state.Presets {
		if _, ok := live[name]; !ok {
			delete(s.state.Presets, name)
			metaRemoved++
		}
	}
	if metaRemoved > 0 {
		s.commit()
	}

	favoritesRemoved = s.favorites.prune(live)
	return metaRemoved, favoritesRemoved
}
