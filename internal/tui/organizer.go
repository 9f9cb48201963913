package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollefeld/presetdeck/internal/organizer"
	"github.com/hollefeld/presetdeck/internal/sidecar"
	"github.com/hollefeld/presetdeck/internal/util"
)

// crumb is one breadcrumb segment: the folder id and its display name at the
// time it was entered.
type crumb struct {
	id   string
	name string
}

// organizerModel manages the folder-tree view: breadcrumbs, the rendered
// listing, the viewport, search-as-you-type, selection and the drag gesture.
type organizerModel struct {
	session   *organizer.Session
	viewState organizer.View
	sel       *organizer.Selection
	drag      organizer.Drag
	crumbs    []crumb // empty means root
	rendered  []organizer.Item

	cursor int // index into rendered
	offset int // first visible row
	height int // visible rows

	search  textinput.Model
	loading bool
	err     error
}

func newOrganizerModel(session *organizer.Session) organizerModel {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "/"
	ti.CharLimit = 128

	return organizerModel{
		session:   session,
		viewState: organizer.NewView(),
		sel:       organizer.NewSelection(),
		search:    ti,
		height:    20,
		loading:   true,
	}
}

// currentFolderID is the folder the listing shows: the last breadcrumb, or
// root when the trail is empty.
func (o *organizerModel) currentFolderID() string {
	if len(o.crumbs) == 0 {
		return sidecar.RootID
	}
	return o.crumbs[len(o.crumbs)-1].id
}

// refresh re-lists the current folder through the view. Called after every
// structural command and whenever search, filter or sort change.
func (o *organizerModel) refresh() {
	o.viewState.Search = o.search.Value()
	fav := o.session.Favorites()
	o.rendered = o.viewState.Apply(o.session.ListChildren(o.currentFolderID()), fav.Contains)
	o.normalizeViewport()
	if o.drag.Dragging() {
		o.drag.Hover(o.cursorItem())
	}
}

// cursorItem returns the item under the cursor, or nil.
func (o *organizerModel) cursorItem() *organizer.Item {
	if o.cursor >= 0 && o.cursor < len(o.rendered) {
		return &o.rendered[o.cursor]
	}
	return nil
}

// enterFolder pushes a breadcrumb and re-lists. Search and the viewport reset
// per folder; filter and sort persist across navigation.
func (o *organizerModel) enterFolder(it organizer.Item) {
	o.crumbs = append(o.crumbs, crumb{id: it.ID, name: it.Name})
	o.search.SetValue("")
	o.cursor = 0
	o.offset = 0
	o.refresh()
}

// goUp pops one breadcrumb. Returns false at root.
func (o *organizerModel) goUp() bool {
	if len(o.crumbs) == 0 {
		return false
	}
	o.crumbs = o.crumbs[:len(o.crumbs)-1]
	o.search.SetValue("")
	o.cursor = 0
	o.offset = 0
	o.refresh()
	return true
}

func (o *organizerModel) breadcrumb() string {
	parts := []string{"/"}
	for _, c := range o.crumbs {
		parts = append(parts, c.name)
	}
	return strings.Join(parts, " > ")
}

func (o *organizerModel) setError(err error) {
	o.err = err
	o.loading = false
}

// cols returns how many items fit per row: several in grid mode, one in list
// mode. The viewport scrolls whole rows.
func (o *organizerModel) cols(width int) int {
	if o.viewState.Mode == organizer.ViewList {
		return 1
	}
	c := width / gridCellWidth
	if c < 1 {
		c = 1
	}
	return c
}

const gridCellWidth = 28

func (o *organizerModel) rowCount(cols int) int {
	if cols < 1 {
		cols = 1
	}
	return (len(o.rendered) + cols - 1) / cols
}

func (o *organizerModel) normalizeViewport() {
	if len(o.rendered) == 0 {
		o.cursor = 0
		o.offset = 0
		return
	}
	if o.cursor < 0 {
		o.cursor = 0
	}
	if o.cursor >= len(o.rendered) {
		o.cursor = len(o.rendered) - 1
	}
	if o.offset < 0 {
		o.offset = 0
	}
}

// scrollTo keeps the cursor's row inside the viewport.
func (o *organizerModel) scrollTo(cols int) {
	row := o.cursor / cols
	if row < o.offset {
		o.offset = row
	}
	if o.height > 0 && row >= o.offset+o.height {
		o.offset = row - o.height + 1
	}
	maxOffset := o.rowCount(cols) - o.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if o.offset > maxOffset {
		o.offset = maxOffset
	}
}

func (o *organizerModel) moveCursor(delta, cols int) {
	o.normalizeViewport()
	next := o.cursor + delta
	if next < 0 || next >= len(o.rendered) {
		return
	}
	o.cursor = next
	o.scrollTo(cols)
	if o.drag.Dragging() {
		o.drag.Hover(o.cursorItem())
	}
}

func (o *organizerModel) pageUp(cols int) {
	o.normalizeViewport()
	next := o.cursor - o.height*cols
	if next < 0 {
		next = 0
	}
	o.cursor = next
	o.scrollTo(cols)
	if o.drag.Dragging() {
		o.drag.Hover(o.cursorItem())
	}
}

func (o *organizerModel) pageDown(cols int) {
	o.normalizeViewport()
	if len(o.rendered) == 0 {
		return
	}
	next := o.cursor + o.height*cols
	if next >= len(o.rendered) {
		next = len(o.rendered) - 1
	}
	o.cursor = next
	o.scrollTo(cols)
	if o.drag.Dragging() {
		o.drag.Hover(o.cursorItem())
	}
}

func (o *organizerModel) goHome(cols int) {
	o.cursor = 0
	o.offset = 0
}

func (o *organizerModel) goEnd(cols int) {
	if len(o.rendered) == 0 {
		return
	}
	o.cursor = len(o.rendered) - 1
	o.scrollTo(cols)
}

func (o *organizerModel) view(width int, spin string) string {
	var sb strings.Builder
	breadWidth := width - 2
	if breadWidth < 8 {
		breadWidth = 8
	}

	sb.WriteString(breadcrumbStyle.Render(util.TruncatePath(o.breadcrumb(), breadWidth)))
	sb.WriteString("\n")

	modeLine := fmt.Sprintf("  Sort: %s   Filter: %s   View: %s",
		o.viewState.Sort.Label(), o.viewState.Filter.Label(), o.viewState.Mode)
	sb.WriteString(helpStyle.Render(modeLine))
	sb.WriteString("\n")

	if o.search.Focused() || o.search.Value() != "" {
		sb.WriteString(searchPromptStyle.Render("  " + o.search.View()))
		sb.WriteString("\n")
	}

	if o.loading {
		sb.WriteString(fmt.Sprintf("\n  %s Loading presets...\n", spin))
		return sb.String()
	}

	if o.err != nil {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(fmt.Sprintf("  Error: %v", o.err)))
		sb.WriteString("\n")
		return sb.String()
	}

	if len(o.rendered) == 0 {
		sb.WriteString("\n  (nothing here)\n")
		return sb.String()
	}

	if o.drag.Dragging() {
		sb.WriteString(dragStyle.Render("  Moving: hover a folder and press m to drop, esc cancels"))
		sb.WriteString("\n")
	}

	cols := o.cols(width)
	o.normalizeViewport()
	o.scrollTo(cols)

	if cols == 1 {
		o.renderList(&sb, width)
	} else {
		o.renderGrid(&sb, cols)
	}

	totalRows := o.rowCount(cols)
	if totalRows > o.height {
		sb.WriteString(helpStyle.Render(
			fmt.Sprintf("  %d/%d items", o.cursor+1, len(o.rendered)),
		))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (o *organizerModel) renderList(sb *strings.Builder, width int) {
	end := o.offset + o.height
	if end > len(o.rendered) {
		end = len(o.rendered)
	}
	rowWidth := width - selectedStyle.GetHorizontalFrameSize()
	if rowWidth < 12 {
		rowWidth = 12
	}
	for i := o.offset; i < end; i++ {
		sb.WriteString(o.renderRow(o.rendered[i], i, rowWidth))
		sb.WriteString("\n")
	}
}

func (o *organizerModel) renderGrid(sb *strings.Builder, cols int) {
	totalRows := o.rowCount(cols)
	endRow := o.offset + o.height
	if endRow > totalRows {
		endRow = totalRows
	}
	for row := o.offset; row < endRow; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(o.rendered) {
				break
			}
			sb.WriteString(o.renderCell(o.rendered[i], i))
		}
		sb.WriteString("\n")
	}
}

// renderRow renders one list-mode line: marker, name, date.
func (o *organizerModel) renderRow(it organizer.Item, i, rowWidth int) string {
	nameWidth := rowWidth - 20
	if nameWidth < 12 {
		nameWidth = 12
	}
	line := fmt.Sprintf("  %s%s  %s",
		o.itemMarker(it),
		o.itemName(it, nameWidth),
		dateStyle.Render(util.ShortDate(itemDate(it))),
	)
	return o.wrapRow(it, i, line, rowWidth)
}

// renderCell renders one grid-mode cell: marker and name only.
func (o *organizerModel) renderCell(it organizer.Item, i int) string {
	inner := gridCellWidth - selectedStyle.GetHorizontalFrameSize()
	line := fmt.Sprintf("%s%s", o.itemMarker(it), o.itemName(it, inner-4))
	return o.wrapRow(it, i, line, inner)
}

func (o *organizerModel) wrapRow(it organizer.Item, i int, line string, width int) string {
	padded := padToWidth(line, width)
	switch {
	case o.drag.Dragging() && o.drag.Target() == it.ID:
		return dropTargetStyle.Render(padded)
	case i == o.cursor:
		return selectedStyle.Render(padded)
	default:
		return normalStyle.Render(padded)
	}
}

// itemMarker combines the bulk checkbox, favorite star and image flag.
func (o *organizerModel) itemMarker(it organizer.Item) string {
	marker := ""
	if o.sel.InBulk(it.ID) {
		marker += bulkStyle.Render("✓")
	} else {
		marker += " "
	}
	if it.Kind == organizer.KindPreset && o.session.Favorites().Contains(it.Name) {
		marker += favoriteStyle.Render("★")
	} else {
		marker += " "
	}
	if it.HasImage() {
		marker += "◩ "
	} else {
		marker += "  "
	}
	return marker
}

func (o *organizerModel) itemName(it organizer.Item, maxWidth int) string {
	style := presetStyle
	name := it.Name
	if it.Kind == organizer.KindFolder {
		style = folderStyle
		name += "/"
	}
	if it.Color != "" {
		style = style.Foreground(lipgloss.Color(it.Color))
	}
	return style.Render(truncateText(name, maxWidth))
}

// itemDate mirrors the date the sort compares on, so what the user sees in
// the date column is what date sorts order by.
func itemDate(it organizer.Item) time.Time {
	if !it.LastModified.IsZero() {
		return it.LastModified
	}
	return it.CreatedAt
}

func truncateText(s string, maxWidth int) string {
	if maxWidth < 4 {
		return s
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	r := []rune(s)
	if len(r) <= maxWidth {
		return s
	}
	return string(r[:maxWidth-3]) + "..."
}

func padToWidth(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
