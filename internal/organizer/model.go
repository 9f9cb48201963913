// Package organizer is the view-model core of presetdeck: it joins the
// host's live preset list with the sidecar metadata to produce a navigable
// synthetic folder tree, and owns the selection, filtering, sorting,
// drag/drop, and mutation logic operating on that tree. It never touches
// host-owned preset content.
package organizer

import (
	"errors"
	"time"

	"github.com/hollefeld/presetdeck/internal/sidecar"
)

var (
	// ErrFolderNotFound reports a folder id or typed folder name that does
	// not resolve to a live folder.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrWouldCycle reports a folder move that would make a folder its own
	// ancestor.
	ErrWouldCycle = errors.New("move would create a folder cycle")
	// ErrUnknownIdentity reports an identity that is neither a known folder
	// nor a known preset.
	ErrUnknownIdentity = errors.New("unknown identity")
	// ErrEmptyName reports a create with a blank folder name.
	ErrEmptyName = errors.New("empty folder name")
)

// Kind distinguishes the two item types in a listing.
type Kind int

const (
	KindFolder Kind = iota
	KindPreset
)

// Item is one renderable row of a folder listing: either a synthetic folder
// or a live preset merged with its sidecar metadata.
type Item struct {
	Kind         Kind
	ID           string // folder id, or preset name
	Name         string
	Ref          string // preset external reference; empty for folders
	CreatedAt    time.Time
	LastModified time.Time
	Color        string
	ImageURL     string
	FolderID     string // preset folder assignment; empty means root
}

// HasImage reports whether a preset item carries an attached image.
func (it Item) HasImage() bool {
	return it.ImageURL != ""
}

// sortDate is the timestamp date sorts compare on: LastModified, falling
// back to CreatedAt, falling back to the Unix epoch.
func (it Item) sortDate() time.Time {
	if !it.LastModified.IsZero() {
		return it.LastModified
	}
	if !it.CreatedAt.IsZero() {
		return it.CreatedAt
	}
	return time.Unix(0, 0).UTC()
}

func folderItem(f sidecar.Folder) Item {
	return Item{
		Kind:         KindFolder,
		ID:           f.ID,
		Name:         f.Name,
		CreatedAt:    f.CreatedAt,
		LastModified: f.LastModified,
		Color:        f.Color,
	}
}

func presetItem(name, ref string, meta sidecar.PresetMeta) Item {
	return Item{
		Kind:         KindPreset,
		ID:           name,
		Name:         name,
		Ref:          ref,
		CreatedAt:    meta.CreatedAt,
		LastModified: meta.LastModified,
		Color:        meta.Color,
		ImageURL:     meta.ImageURL,
		FolderID:     meta.FolderID,
	}
}
