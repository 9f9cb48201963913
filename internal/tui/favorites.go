package tui

import (
	"fmt"
	"strings"

	"github.com/hollefeld/presetdeck/internal/host"
	"github.com/hollefeld/presetdeck/internal/organizer"
)

// favoritesModel shows the favorites registry in stored order, filtered to
// presets that resolve in the live list. It refreshes itself whenever a
// favorites-changed notification arrives, including from the organizer tab.
type favoritesModel struct {
	session *organizer.Session
	rows    []host.Preset

	cursor int
	offset int
	height int
}

func newFavoritesModel(session *organizer.Session) favoritesModel {
	return favoritesModel{session: session, height: 20}
}

// refresh rebuilds the rows: registry order, unresolvable names skipped.
func (f *favoritesModel) refresh() {
	byName := make(map[string]host.Preset)
	for _, p := range f.session.Presets() {
		byName[p.Name] = p
	}
	f.rows = f.rows[:0]
	for _, name := range f.session.Favorites().List() {
		if p, ok := byName[name]; ok {
			f.rows = append(f.rows, p)
		}
	}
	if f.cursor >= len(f.rows) {
		f.cursor = len(f.rows) - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.offset > f.cursor {
		f.offset = f.cursor
	}
}

func (f *favoritesModel) selected() *host.Preset {
	if f.cursor >= 0 && f.cursor < len(f.rows) {
		return &f.rows[f.cursor]
	}
	return nil
}

func (f *favoritesModel) moveUp() {
	if f.cursor > 0 {
		f.cursor--
		if f.cursor < f.offset {
			f.offset = f.cursor
		}
	}
}

func (f *favoritesModel) moveDown() {
	if f.cursor < len(f.rows)-1 {
		f.cursor++
		if f.cursor >= f.offset+f.height {
			f.offset = f.cursor - f.height + 1
		}
	}
}

func (f *favoritesModel) view(width int) string {
	var sb strings.Builder
	sb.WriteString(breadcrumbStyle.Render("Favorites"))
	sb.WriteString("\n")

	if len(f.rows) == 0 {
		sb.WriteString("\n  No favorites yet. Press f on a preset to add one.\n")
		return sb.String()
	}

	end := f.offset + f.height
	if end > len(f.rows) {
		end = len(f.rows)
	}
	rowWidth := width - selectedStyle.GetHorizontalFrameSize()
	if rowWidth < 12 {
		rowWidth = 12
	}
	for i := f.offset; i < end; i++ {
		p := f.rows[i]
		line := fmt.Sprintf("  %s %s", favoriteStyle.Render("★"), presetStyle.Render(truncateText(p.Name, rowWidth-6)))
		padded := padToWidth(line, rowWidth)
		if i == f.cursor {
			sb.WriteString(selectedStyle.Render(padded))
		} else {
			sb.WriteString(normalStyle.Render(padded))
		}
		sb.WriteString("\n")
	}

	if len(f.rows) > f.height {
		sb.WriteString(helpStyle.Render(fmt.Sprintf("  %d/%d favorites", f.cursor+1, len(f.rows))))
		sb.WriteString("\n")
	}

	return sb.String()
}
