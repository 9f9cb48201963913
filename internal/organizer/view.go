package organizer

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode orders items within their type group. Folders always sort before
// presets regardless of mode.
type SortMode string

const (
	SortNameAsc  SortMode = "name-asc"
	SortNameDesc SortMode = "name-desc"
	SortDateAsc  SortMode = "date-asc"
	SortDateDesc SortMode = "date-desc"
)

// FilterMode restricts which items a listing shows.
type FilterMode string

const (
	FilterAll           FilterMode = "all"
	FilterFavorites     FilterMode = "favorites"
	FilterUncategorized FilterMode = "uncategorized"
	FilterHasImage      FilterMode = "has-image"
)

// ViewMode only changes rendering density, never ordering or membership.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

var sortCycle = []SortMode{SortNameAsc, SortNameDesc, SortDateDesc, SortDateAsc}
var filterCycle = []FilterMode{FilterAll, FilterFavorites, FilterUncategorized, FilterHasImage}

// Next returns the following sort mode in the cycle.
func (m SortMode) Next() SortMode {
	for i, s := range sortCycle {
		if s == m {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return SortNameAsc
}

// Next returns the following filter mode in the cycle.
func (m FilterMode) Next() FilterMode {
	for i, f := range filterCycle {
		if f == m {
			return filterCycle[(i+1)%len(filterCycle)]
		}
	}
	return FilterAll
}

// Label returns a short human-readable name for status bars and menus.
func (m SortMode) Label() string {
	switch m {
	case SortNameAsc:
		return "Name (A-Z)"
	case SortNameDesc:
		return "Name (Z-A)"
	case SortDateDesc:
		return "Date (Newest)"
	case SortDateAsc:
		return "Date (Oldest)"
	}
	return string(m)
}

// Label returns a short human-readable name for status bars and menus.
func (m FilterMode) Label() string {
	switch m {
	case FilterAll:
		return "All Items"
	case FilterFavorites:
		return "Favorites"
	case FilterUncategorized:
		return "Uncategorized"
	case FilterHasImage:
		return "With Images"
	}
	return string(m)
}

// View is the active search/filter/sort state applied to a listing to
// produce the rendered order.
type View struct {
	Search string
	Filter FilterMode
	Sort   SortMode
	Mode   ViewMode
}

// NewView returns the default view: everything, name ascending, grid.
func NewView() View {
	return View{Filter: FilterAll, Sort: SortNameAsc, Mode: ViewGrid}
}

// nameCollator compares display names the way a user expects: locale-aware
// and case-insensitive, so "alpha" sorts between "Beta" and nothing strange
// happens with accents. The core is single-threaded so a shared collator is
// safe.
var nameCollator = collate.New(language.Und, collate.IgnoreCase)

// Apply filters and orders a listing: search first, then filter mode, then
// sort with folders strictly before presets. isFavorite answers favorites
// membership for the favorites filter.
func (v View) Apply(items []Item, isFavorite func(name string) bool) []Item {
	search := strings.ToLower(strings.TrimSpace(v.Search))

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		switch v.Filter {
		case FilterFavorites:
			// Folders are excluded entirely from the favorites view.
			if it.Kind != KindPreset || isFavorite == nil || !isFavorite(it.Name) {
				continue
			}
		case FilterUncategorized:
			if it.Kind != KindPreset || it.FolderID != "" {
				continue
			}
		case FilterHasImage:
			if it.Kind != KindPreset || !it.HasImage() {
				continue
			}
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind == KindFolder
		}
		switch v.Sort {
		case SortNameDesc:
			return nameCollator.CompareString(b.Name, a.Name) < 0
		case SortDateAsc:
			if !a.sortDate().Equal(b.sortDate()) {
				return a.sortDate().Before(b.sortDate())
			}
		case SortDateDesc:
			if !a.sortDate().Equal(b.sortDate()) {
				return b.sortDate().Before(a.sortDate())
			}
		}
		return nameCollator.CompareString(a.Name, b.Name) < 0
	})

	return out
}
