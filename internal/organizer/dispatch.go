package organizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/hollefeld/presetdeck/internal/sidecar"
)

// Dispatcher methods: the single place structural commands are applied to
// the in-memory state. Each command validates minimally, mutates, and
// commits once; the caller re-renders afterwards. Confirmation dialogs live
// in the UI, so a declined confirmation never reaches these methods.

// CreateFolder inserts a fresh folder under parentID and returns it.
func (s *Session) CreateFolder(name, parentID string) (sidecar.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return sidecar.Folder{}, ErrEmptyName
	}
	if !s.folderResolves(parentID) {
		return sidecar.Folder{}, fmt.Errorf("parent %q: %w", parentID, ErrFolderNotFound)
	}

	now := s.now()
	f := sidecar.Folder{
		ID:           uuid.NewString(),
		Name:         name,
		ParentID:     parentID,
		CreatedAt:    now,
		LastModified: now,
	}
	s.state.Folders[f.ID] = f
	if err := s.commit(); err != nil {
		return sidecar.Folder{}, err
	}
	s.log.Info().Str("folder", f.ID).Str("name", name).Msg("folder created")
	return f, nil
}

// RenameFolder updates a folder's name. An empty or unchanged name is the
// user backing out: no mutation, no error.
func (s *Session) RenameFolder(id, newName string) error {
	f, ok := s.state.Folders[id]
	if !ok {
		return fmt.Errorf("folder %q: %w", id, ErrFolderNotFound)
	}
	newName = strings.TrimSpace(newName)
	if newName == "" || newName == f.Name {
		return nil
	}
	f.Name = newName
	f.LastModified = s.now()
	s.state.Folders[id] = f
	return s.commit()
}

// DeleteFolder removes a folder and cascades: presets assigned to it become
// root-level, and child folders are reparented to the deleted folder's own
// parent so no ParentID ever dangles.
func (s *Session) DeleteFolder(id string) error {
	f, ok := s.state.Folders[id]
	if !ok {
		return fmt.Errorf("folder %q: %w", id, ErrFolderNotFound)
	}
	s.cascadeDelete(id, f.ParentID)
	return s.commit()
}

func (s *Session) cascadeDelete(id, newParent string) {
	for name, meta := range s.state.Presets {
		if meta.FolderID == id {
			meta.FolderID = ""
			s.state.Presets[name] = meta
		}
	}
	for childID, child := range s.state.Folders {
		if childID != id && child.ParentID == id {
			child.ParentID = newParent
			s.state.Folders[childID] = child
		}
	}
	delete(s.state.Folders, id)
	s.log.Info().Str("folder", id).Msg("folder deleted, contents reassigned")
}

// SetFolderColor sets or clears a folder's color.
func (s *Session) SetFolderColor(id, color string) error {
	f, ok := s.state.Folders[id]
	if !ok {
		return fmt.Errorf("folder %q: %w", id, ErrFolderNotFound)
	}
	f.Color = color
	f.LastModified = s.now()
	s.state.Folders[id] = f
	return s.commit()
}

// MoveItem moves a folder or preset into targetFolderID (root allowed).
// Folder moves refuse to create cycles; preset moves to root clear the
// assignment. Moving a preset onto the folder it is already inside is a
// harmless redundant move.
func (s *Session) MoveItem(identity, targetFolderID string) error {
	if err := s.moveOne(identity, targetFolderID); err != nil {
		return err
	}
	return s.commit()
}

// moveOne applies a single move without committing, so bulk moves can batch
// one write for the whole command.
func (s *Session) moveOne(identity, targetFolderID string) error {
	if !s.folderResolves(targetFolderID) {
		return fmt.Errorf("target %q: %w", targetFolderID, ErrFolderNotFound)
	}

	if f, ok := s.state.Folders[identity]; ok {
		if s.wouldCycle(identity, targetFolderID) {
			return fmt.Errorf("folder %q into %q: %w", identity, targetFolderID, ErrWouldCycle)
		}
		f.ParentID = targetFolderID
		f.LastModified = s.now()
		s.state.Folders[identity] = f
		return nil
	}

	if !s.presetKnown(identity) {
		return fmt.Errorf("%q: %w", identity, ErrUnknownIdentity)
	}
	meta := s.state.Presets[identity]
	if targetFolderID == sidecar.RootID {
		meta.FolderID = ""
	} else {
		meta.FolderID = targetFolderID
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = s.now()
	}
	meta.LastModified = s.now()
	s.state.Presets[identity] = meta
	return nil
}

// MoveItemsToFolderName resolves a typed folder name case-insensitively and
// moves every identity into the first matching folder. Duplicate folder
// names are permitted; the match is deterministic (name order, then oldest
// first). Identities that resolve to nothing are skipped, not fatal.
// Returns how many items actually moved.
func (s *Session) MoveItemsToFolderName(identities []string, typedName string) (int, error) {
	typedName = strings.TrimSpace(typedName)
	if typedName == "" {
		return 0, nil
	}
	target, ok := s.folderByName(typedName)
	if !ok {
		return 0, fmt.Errorf("folder %q: %w", typedName, ErrFolderNotFound)
	}

	moved := 0
	for _, id := range identities {
		if err := s.moveOne(id, target.ID); err != nil {
			s.log.Debug().Str("identity", id).Err(err).Msg("skipping item in bulk move")
			continue
		}
		moved++
	}
	if moved > 0 {
		if err := s.commit(); err != nil {
			return moved, err
		}
	}
	return moved, nil
}

// folderByName finds the first folder whose name matches case-insensitively.
func (s *Session) folderByName(name string) (sidecar.Folder, bool) {
	lower := strings.ToLower(name)
	var matches []sidecar.Folder
	for _, f := range s.state.Folders {
		if strings.ToLower(f.Name) == lower {
			matches = append(matches, f)
		}
	}
	if len(matches) == 0 {
		return sidecar.Folder{}, false
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.Before(matches[j].CreatedAt)
		}
		return matches[i].ID < matches[j].ID
	})
	return matches[0], true
}

// DeleteBulk detaches every identity: folder identities are deleted with
// the usual cascade, preset identities lose their metadata record (the
// preset itself stays on the host). Unknown identities are skipped so one
// stale row cannot block the rest. Returns how many records were removed.
func (s *Session) DeleteBulk(identities []string) int {
	removed := 0
	for _, id := range identities {
		if f, ok := s.state.Folders[id]; ok {
			s.cascadeDelete(id, f.ParentID)
			removed++
			continue
		}
		if _, ok := s.state.Presets[id]; ok {
			delete(s.state.Presets, id)
			removed++
		}
	}
	if removed > 0 {
		s.commit()
	}
	return removed
}

// SetPresetImage attaches or overwrites the image data reference on a
// preset's metadata, creating the record if absent.
func (s *Session) SetPresetImage(name, imageDataURL string) error {
	meta := s.state.Presets[name]
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = s.now()
	}
	meta.ImageURL = imageDataURL
	meta.LastModified = s.now()
	s.state.Presets[name] = meta
	return s.commit()
}

// ClearFolderAssignment sends a preset back to root. No-op when it already
// lives there.
func (s *Session) ClearFolderAssignment(name string) error {
	meta, ok := s.state.Presets[name]
	if !ok || meta.FolderID == "" {
		return nil
	}
	meta.FolderID = ""
	meta.LastModified = s.now()
	s.state.Presets[name] = meta
	return s.commit()
}

// ToggleFavorite flips favorites membership and returns the new state. The
// registry persists itself and notifies every subscribed surface.
func (s *Session) ToggleFavorite(name string) bool {
	return s.favorites.Toggle(name)
}

// folderResolves is true for root and for any live folder id.
func (s *Session) folderResolves(id string) bool {
	if id == sidecar.RootID {
		return true
	}
	_, ok := s.state.Folders[id]
	return ok
}

// presetKnown is true when the identity is a live preset or already has a
// metadata record (orphans stay movable until pruned).
func (s *Session) presetKnown(name string) bool {
	if _, ok := s.state.Presets[name]; ok {
		return true
	}
	for _, p := range s.presets {
		if p.Name == name {
			return true
		}
	}
	return false
}

// wouldCycle reports whether parenting folderID under targetID would make
// the folder its own ancestor. Walks up from the target, bounded by the
// folder count.
func (s *Session) wouldCycle(folderID, targetID string) bool {
	cur := targetID
	for steps := 0; steps <= len(s.state.Folders); steps++ {
		if cur == sidecar.RootID || cur == "" {
			return false
		}
		if cur == folderID {
			return true
		}
		f, ok := s.state.Folders[cur]
		if !ok {
			return false
		}
		cur = f.ParentID
	}
	return true
}
