package organizer

// Picked is the single selected preset: the identity plus the external
// reference handed back to the host on load.
type Picked struct {
	Name string
	Ref  string
}

// ClickResult tells the caller what a plain click did.
type ClickResult int

const (
	// ClickNone: the click hit nothing actionable.
	ClickNone ClickResult = iota
	// ClickNavigate: a folder was clicked; the caller should descend into it.
	ClickNavigate
	// ClickSelected: a preset became the single selection.
	ClickSelected
)

// Selection tracks single selection, the bulk-selection set, and the anchor
// used by range selection. All positional logic operates on the currently
// rendered order, after filter and sort.
type Selection struct {
	Current *Picked
	bulk    map[string]struct{}
	anchor  string
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{bulk: make(map[string]struct{})}
}

// Click handles a plain activation of an item. Folders navigate (clearing
// any bulk selection), presets become the single selection and the anchor.
func (s *Selection) Click(it Item) ClickResult {
	s.ClearBulk()
	if it.Kind == KindFolder {
		return ClickNavigate
	}
	s.Current = &Picked{Name: it.Name, Ref: it.Ref}
	s.anchor = it.ID
	return ClickSelected
}

// Toggle handles a modifier-toggle activation: membership of the item in the
// bulk set flips, and the anchor moves to the item.
func (s *Selection) Toggle(it Item) {
	if _, ok := s.bulk[it.ID]; ok {
		delete(s.bulk, it.ID)
	} else {
		s.bulk[it.ID] = struct{}{}
	}
	s.anchor = it.ID
}

// Range handles a range-modifier activation: every item between the anchor
// and the clicked item in rendered order, inclusive, joins the bulk set. If
// the anchor is not part of the rendered order (filtered out, navigated
// away), nothing happens.
func (s *Selection) Range(rendered []Item, it Item) {
	if s.anchor == "" {
		return
	}
	start, end := -1, -1
	for i, r := range rendered {
		if r.ID == s.anchor {
			start = i
		}
		if r.ID == it.ID {
			end = i
		}
	}
	if start == -1 || end == -1 {
		return
	}
	if start > end {
		start, end = end, start
	}
	for i := start; i <= end; i++ {
		s.bulk[rendered[i].ID] = struct{}{}
	}
}

// InBulk reports bulk membership for an identity.
func (s *Selection) InBulk(id string) bool {
	_, ok := s.bulk[id]
	return ok
}

// BulkCount returns the size of the bulk set.
func (s *Selection) BulkCount() int {
	return len(s.bulk)
}

// BulkIDs returns the bulk set in the given rendered order, so bulk
// commands apply in the order the user sees. Identities no longer rendered
// are appended at the end rather than dropped.
func (s *Selection) BulkIDs(rendered []Item) []string {
	ids := make([]string, 0, len(s.bulk))
	seen := make(map[string]struct{}, len(s.bulk))
	for _, it := range rendered {
		if _, ok := s.bulk[it.ID]; ok {
			ids = append(ids, it.ID)
			seen[it.ID] = struct{}{}
		}
	}
	for id := range s.bulk {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// ClearBulk empties the bulk set without touching the single selection.
func (s *Selection) ClearBulk() {
	if len(s.bulk) > 0 {
		s.bulk = make(map[string]struct{})
	}
}

// Reset drops all selection state, as when the organizer surface closes.
func (s *Selection) Reset() {
	s.Current = nil
	s.anchor = ""
	s.ClearBulk()
}
