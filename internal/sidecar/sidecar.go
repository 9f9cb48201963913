// Package sidecar owns the durable organizational state that presetdeck
// keeps alongside the host's preset list: the synthetic folder tree,
// per-preset metadata, and the favorites set. It is load/save only; all
// business rules live in the organizer package.
package sidecar

import "time"

// RootID is the implicit root of the folder tree. It is never stored as a
// Folder record: a folder with ParentID == RootID and a preset without a
// FolderID both live at the top level.
const RootID = "root"

// Folder is a hierarchy node that exists only in this sidecar, with no
// counterpart in the host's preset list.
type Folder struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ParentID     string    `json:"parentId"`
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
	Color        string    `json:"color,omitempty"`
}

// PresetMeta is the organizational record for one preset, keyed by the
// preset's name. It never holds preset content.
type PresetMeta struct {
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
	FolderID     string    `json:"folderId,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Color        string    `json:"color,omitempty"`
}

// State is the full metadata record as persisted: one folder map and one
// preset-metadata map. Saves overwrite the whole structure.
type State struct {
	Folders map[string]Folder     `json:"folders"`
	Presets map[string]PresetMeta `json:"presets"`
}

// NewState returns an empty State with both maps allocated.
func NewState() State {
	return State{
		Folders: make(map[string]Folder),
		Presets: make(map[string]PresetMeta),
	}
}
