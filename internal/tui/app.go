package tui

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hollefeld/presetdeck/internal/config"
	"github.com/hollefeld/presetdeck/internal/host"
	"github.com/hollefeld/presetdeck/internal/organizer"
)

// Tab identifies the active view.
type Tab int

const (
	TabOrganizer Tab = iota
	TabFavorites
)

// Messages
type presetsMsg struct{ presets []host.Preset }

type errMsg struct{ err error }

type appliedMsg struct {
	name string
	err  error
}

type bodyMsg struct {
	name string
	body []byte
	err  error
}

type imageReadMsg struct {
	name    string
	dataURL string
	err     error
}

type favoritesChangedMsg struct{}

type statusClearMsg struct{ id int }

// Model is the main Bubble Tea model.
type Model struct {
	client  *host.Client
	session *organizer.Session
	cfg     *config.Config
	log     zerolog.Logger

	activeTab Tab
	org       organizerModel
	favs      favoritesModel
	dlg       *dialog
	preview   *previewModel
	spinner   spinner.Model

	width      int
	height     int
	showHelp   bool
	helpOffset int
	statusMsg  string
	statusID   int
}

// NewModel creates the TUI model.
func NewModel(c *host.Client, session *organizer.Session, cfg *config.Config, log zerolog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		client:    c,
		session:   session,
		cfg:       cfg,
		log:       log,
		activeTab: TabOrganizer,
		org:       newOrganizerModel(session),
		favs:      newFavoritesModel(session),
		spinner:   s,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadPresets(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewHeight := m.height - 9 // header, tabs, mode line, status bar
		if viewHeight < 4 {
			viewHeight = 4
		}
		m.org.height = viewHeight
		m.favs.height = viewHeight
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case presetsMsg:
		m.session.SetPresets(msg.presets)
		m.org.loading = false
		m.org.err = nil
		m.org.refresh()
		m.favs.refresh()
		return m, nil

	case errMsg:
		m.org.setError(msg.err)
		return m, nil

	case appliedMsg:
		if msg.err != nil {
			m.log.Error().Str("preset", msg.name).Err(msg.err).Msg("applying preset failed")
			return m, m.setStatus(fmt.Sprintf("Load failed: %v", msg.err))
		}
		// The host takes over from here; the organizer surface closes.
		return m, tea.Quit

	case bodyMsg:
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("Preview failed: %v", msg.err))
		}
		m.preview = newPreview(msg.name, msg.body)
		return m, nil

	case imageReadMsg:
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("Reading image failed: %v", msg.err))
		}
		if err := m.session.SetPresetImage(msg.name, msg.dataURL); err != nil {
			return m, m.setStatus(fmt.Sprintf("Attaching image failed: %v", err))
		}
		m.org.refresh()
		return m, m.setStatus(fmt.Sprintf("Image attached to %s", msg.name))

	case favoritesChangedMsg:
		m.favs.refresh()
		m.org.refresh()
		return m, nil

	case statusClearMsg:
		if msg.id == m.statusID {
			m.statusMsg = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Modal surfaces capture everything first.
	if m.dlg != nil {
		return m.handleDialogKey(key, msg)
	}
	if m.preview != nil {
		return m.handlePreviewKey(key)
	}
	if m.showHelp {
		return m.handleHelpKey(key)
	}

	searchFocused := m.activeTab == TabOrganizer && m.org.search.Focused()

	// Global keys.
	switch key {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if searchFocused {
			break
		}
		return m, tea.Quit

	case "?":
		if searchFocused {
			break
		}
		m.showHelp = true
		return m, nil

	case "tab":
		m.org.search.Blur()
		if m.activeTab == TabOrganizer {
			m.activeTab = TabFavorites
			m.favs.refresh()
		} else {
			m.activeTab = TabOrganizer
		}
		return m, nil
	}

	switch m.activeTab {
	case TabOrganizer:
		return m.handleOrganizerKey(key, msg)
	case TabFavorites:
		return m.handleFavoritesKey(key)
	}

	return m, nil
}

func (m Model) handleOrganizerKey(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.org.search.Focused() {
		switch key {
		case "enter", "esc":
			m.org.search.Blur()
			if key == "esc" {
				m.org.search.SetValue("")
				m.org.refresh()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.org.search, cmd = m.org.search.Update(msg)
			m.org.cursor = 0
			m.org.offset = 0
			m.org.refresh()
			return m, cmd
		}
	}

	cols := m.org.cols(m.width)

	switch key {
	case "up", "k":
		m.org.moveCursor(-cols, cols)
	case "down", "j":
		m.org.moveCursor(cols, cols)
	case "left":
		m.org.moveCursor(-1, cols)
	case "right":
		m.org.moveCursor(1, cols)
	case "pgup", "ctrl+u":
		m.org.pageUp(cols)
	case "pgdown", "ctrl+d":
		m.org.pageDown(cols)
	case "home":
		m.org.goHome(cols)
	case "end", "G":
		m.org.goEnd(cols)

	case "/":
		m.org.search.Focus()
		return m, nil

	case "enter":
		return m.activateCursor()

	case "h", "backspace":
		if m.org.drag.Dragging() {
			return m, nil
		}
		if m.org.goUp() {
			m.org.sel.ClearBulk()
		}

	case "L":
		if sel := m.org.sel.Current; sel != nil {
			return m, m.applyPreset(sel.Name, sel.Ref)
		}
		if it := m.org.cursorItem(); it != nil && it.Kind == organizer.KindPreset {
			return m, m.applyPreset(it.Name, it.Ref)
		}

	case "v":
		if it := m.org.cursorItem(); it != nil {
			m.org.sel.Toggle(*it)
		}

	case "V":
		if it := m.org.cursorItem(); it != nil {
			m.org.sel.Range(m.org.rendered, *it)
		}

	case "m":
		return m.handleGrab()

	case "esc":
		if m.org.drag.Dragging() {
			m.org.drag.Cancel()
			return m, m.setStatus("Move canceled")
		}
		if m.org.search.Value() != "" {
			m.org.search.SetValue("")
			m.org.refresh()
			return m, nil
		}
		if m.org.sel.BulkCount() > 0 {
			n := m.org.sel.BulkCount()
			m.org.sel.ClearBulk()
			return m, m.setStatus(fmt.Sprintf("Cleared %d selected", n))
		}

	case "n":
		m.dlg = newInputDialog(actionNewFolder, "New folder name:", "")
		return m, nil

	case "r":
		if it := m.org.cursorItem(); it != nil && it.Kind == organizer.KindFolder {
			m.dlg = newInputDialog(actionRenameFolder, fmt.Sprintf("Rename %q:", it.Name), it.Name)
			m.dlg.targetID = it.ID
		}
		return m, nil

	case "D":
		return m.confirmDelete()

	case "c":
		if it := m.org.cursorItem(); it != nil && it.Kind == organizer.KindFolder {
			m.dlg = newInputDialog(actionFolderColor, fmt.Sprintf("Color for %q (hex, empty clears):", it.Name), it.Color)
			m.dlg.targetID = it.ID
		}
		return m, nil

	case "i":
		if it := m.org.cursorItem(); it != nil && it.Kind == organizer.KindPreset {
			m.dlg = newInputDialog(actionSetImage, fmt.Sprintf("Image file for %q:", it.Name), "")
			m.dlg.targetName = it.Name
		}
		return m, nil

	case "t":
		ids := m.bulkOrCursorIDs()
		if len(ids) > 0 {
			m.dlg = newInputDialog(actionMoveTyped, fmt.Sprintf("Move %d item(s) to folder:", len(ids)), "")
			m.dlg.ids = ids
		}
		return m, nil

	case "f":
		if it := m.org.cursorItem(); it != nil && it.Kind == organizer.KindPreset {
			if m.session.ToggleFavorite(it.Name) {
				return m, m.setStatus(fmt.Sprintf("Favorited %s", it.Name))
			}
			return m, m.setStatus(fmt.Sprintf("Unfavorited %s", it.Name))
		}

	case "x":
		if it := m.org.cursorItem(); it != nil && it.Kind == organizer.KindPreset {
			if err := m.session.ClearFolderAssignment(it.Name); err != nil {
				return m, m.setStatus(fmt.Sprintf("Error: %v", err))
			}
			m.org.refresh()
			return m, m.setStatus(fmt.Sprintf("Moved %s to top level", it.Name))
		}

	case " ":
		if it := m.org.cursorItem(); it != nil && it.Kind == organizer.KindPreset {
			return m, m.fetchBody(it.Name, it.Ref)
		}

	case "s":
		m.org.viewState.Sort = m.org.viewState.Sort.Next()
		m.org.refresh()
		return m, m.setStatus("Sort: " + m.org.viewState.Sort.Label())

	case "F":
		m.org.viewState.Filter = m.org.viewState.Filter.Next()
		m.org.cursor = 0
		m.org.offset = 0
		m.org.refresh()
		return m, m.setStatus("Filter: " + m.org.viewState.Filter.Label())

	case "g":
		if m.org.viewState.Mode == organizer.ViewGrid {
			m.org.viewState.Mode = organizer.ViewList
		} else {
			m.org.viewState.Mode = organizer.ViewGrid
		}
		m.org.cursor = 0
		m.org.offset = 0
	}

	return m, nil
}

// activateCursor is enter on the organizer tab: drop when dragging, descend
// on a folder, select a preset, load it when it is already selected.
func (m Model) activateCursor() (tea.Model, tea.Cmd) {
	if m.org.drag.Dragging() {
		return m.handleDrop()
	}

	it := m.org.cursorItem()
	if it == nil {
		return m, nil
	}

	if it.Kind == organizer.KindPreset && m.org.sel.Current != nil && m.org.sel.Current.Name == it.Name {
		return m, m.applyPreset(it.Name, it.Ref)
	}

	switch m.org.sel.Click(*it) {
	case organizer.ClickNavigate:
		m.org.enterFolder(*it)
	case organizer.ClickSelected:
		return m, m.setStatus(fmt.Sprintf("Selected %s (enter again to load)", it.Name))
	}
	return m, nil
}

// handleGrab is the m key: start the move gesture, or complete it when one is
// already in progress.
func (m Model) handleGrab() (tea.Model, tea.Cmd) {
	if m.org.drag.Dragging() {
		return m.handleDrop()
	}
	it := m.org.cursorItem()
	if !m.org.drag.Start(it) {
		return m, nil
	}
	m.org.drag.Hover(it)
	return m, m.setStatus(fmt.Sprintf("Moving %s: hover a folder, m to drop", it.Name))
}

func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	move, ok := m.org.drag.Drop()
	if !ok {
		return m, m.setStatus("Move canceled: not over a folder")
	}
	if err := m.session.MoveItem(move.Identity, move.TargetFolderID); err != nil {
		return m, m.setStatus(fmt.Sprintf("Move failed: %v", err))
	}
	m.org.refresh()
	return m, m.setStatus(fmt.Sprintf("Moved %s", move.Identity))
}

// confirmDelete opens the delete confirmation for the bulk set, or for the
// item under the cursor when nothing is bulk-selected.
func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	if n := m.org.sel.BulkCount(); n > 0 {
		m.dlg = newConfirmDialog(actionDeleteBulk, fmt.Sprintf("Delete %d selected item(s)?", n))
		m.dlg.ids = m.org.sel.BulkIDs(m.org.rendered)
		return m, nil
	}
	it := m.org.cursorItem()
	if it == nil {
		return m, nil
	}
	prompt := fmt.Sprintf("Delete preset metadata for %q?", it.Name)
	if it.Kind == organizer.KindFolder {
		prompt = fmt.Sprintf("Delete folder %q? Its contents move up one level.", it.Name)
	}
	m.dlg = newConfirmDialog(actionDeleteOne, prompt)
	m.dlg.ids = []string{it.ID}
	return m, nil
}

func (m Model) bulkOrCursorIDs() []string {
	if m.org.sel.BulkCount() > 0 {
		return m.org.sel.BulkIDs(m.org.rendered)
	}
	if it := m.org.cursorItem(); it != nil {
		return []string{it.ID}
	}
	return nil
}

func (m Model) handleDialogKey(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.dlg

	if d.confirm {
		switch key {
		case "y", "Y", "enter":
			m.dlg = nil
			return m.acceptDialog(d, "")
		case "n", "N", "esc":
			m.dlg = nil
			return m, m.setStatus("Canceled")
		}
		return m, nil
	}

	switch key {
	case "enter":
		value := d.input.Value()
		m.dlg = nil
		return m.acceptDialog(d, value)
	case "esc":
		m.dlg = nil
		return m, m.setStatus("Canceled")
	default:
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return m, cmd
	}
}

// acceptDialog applies the accepted dialog. Empty input is the user backing
// out of everything except color, where empty clears.
func (m Model) acceptDialog(d *dialog, value string) (tea.Model, tea.Cmd) {
	switch d.action {
	case actionNewFolder:
		f, err := m.session.CreateFolder(value, m.org.currentFolderID())
		if err != nil {
			if strings.TrimSpace(value) == "" {
				return m, nil
			}
			return m, m.setStatus(fmt.Sprintf("Error: %v", err))
		}
		m.org.refresh()
		return m, m.setStatus(fmt.Sprintf("Created folder %s", f.Name))

	case actionRenameFolder:
		if err := m.session.RenameFolder(d.targetID, value); err != nil {
			return m, m.setStatus(fmt.Sprintf("Error: %v", err))
		}
		m.org.refresh()
		return m, nil

	case actionDeleteOne, actionDeleteBulk:
		removed := m.session.DeleteBulk(d.ids)
		m.org.sel.ClearBulk()
		m.org.refresh()
		return m, m.setStatus(fmt.Sprintf("Deleted %d item(s)", removed))

	case actionFolderColor:
		if err := m.session.SetFolderColor(d.targetID, strings.TrimSpace(value)); err != nil {
			return m, m.setStatus(fmt.Sprintf("Error: %v", err))
		}
		m.org.refresh()
		return m, nil

	case actionSetImage:
		if strings.TrimSpace(value) == "" {
			return m, nil
		}
		return m, m.readImage(d.targetName, strings.TrimSpace(value))

	case actionMoveTyped:
		moved, err := m.session.MoveItemsToFolderName(d.ids, value)
		if err != nil {
			return m, m.setStatus(fmt.Sprintf("Error: %v", err))
		}
		m.org.sel.ClearBulk()
		m.org.refresh()
		return m, m.setStatus(fmt.Sprintf("Moved %d item(s)", moved))
	}

	return m, nil
}

func (m Model) handlePreviewKey(key string) (tea.Model, tea.Cmd) {
	height := m.height - 6
	switch key {
	case "esc", " ", "q":
		m.preview = nil
	case "up", "k":
		m.preview.scroll(-1, height)
	case "down", "j":
		m.preview.scroll(1, height)
	case "pgup", "ctrl+u":
		m.preview.scroll(-height, height)
	case "pgdown", "ctrl+d":
		m.preview.scroll(height, height)
	case "g", "home":
		m.preview.offset = 0
	}
	return m, nil
}

func (m Model) handleHelpKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "?", "esc", "q":
		m.showHelp = false
		m.helpOffset = 0
	case "up", "k":
		if m.helpOffset > 0 {
			m.helpOffset--
		}
	case "down", "j":
		m.helpOffset++
	case "home", "g":
		m.helpOffset = 0
	}
	return m, nil
}

func (m Model) handleFavoritesKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.favs.moveUp()
	case "down", "j":
		m.favs.moveDown()
	case "enter", "L":
		if sel := m.favs.selected(); sel != nil {
			return m, m.applyPreset(sel.Name, sel.Ref)
		}
	case "f":
		if sel := m.favs.selected(); sel != nil {
			m.session.ToggleFavorite(sel.Name)
			return m, m.setStatus(fmt.Sprintf("Unfavorited %s", sel.Name))
		}
	case " ":
		if sel := m.favs.selected(); sel != nil {
			return m, m.fetchBody(sel.Name, sel.Ref)
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cols := m.org.cols(m.width)
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		switch {
		case m.preview != nil:
			m.preview.scroll(-1, m.height-6)
		case m.activeTab == TabOrganizer:
			m.org.moveCursor(-cols, cols)
		default:
			m.favs.moveUp()
		}
	case tea.MouseButtonWheelDown:
		switch {
		case m.preview != nil:
			m.preview.scroll(1, m.height-6)
		case m.activeTab == TabOrganizer:
			m.org.moveCursor(cols, cols)
		default:
			m.favs.moveDown()
		}
	}
	return m, nil
}

// Commands

func (m Model) loadPresets() tea.Cmd {
	return func() tea.Msg {
		presets, err := m.client.ListPresets(context.Background(), m.cfg.Family)
		if err != nil {
			return errMsg{err: err}
		}
		return presetsMsg{presets: presets}
	}
}

func (m Model) applyPreset(name, ref string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.Apply(context.Background(), m.cfg.Family, ref)
		return appliedMsg{name: name, err: err}
	}
}

func (m Model) fetchBody(name, ref string) tea.Cmd {
	return func() tea.Msg {
		body, err := m.client.FetchBody(context.Background(), m.cfg.Family, ref)
		return bodyMsg{name: name, body: body, err: err}
	}
}

// readImage loads an image file off the event loop and encodes it as a data
// URL for the sidecar.
func (m Model) readImage(name, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return imageReadMsg{name: name, err: err}
		}
		mime := "image/png"
		switch strings.ToLower(filepath.Ext(path)) {
		case ".jpg", ".jpeg":
			mime = "image/jpeg"
		case ".gif":
			mime = "image/gif"
		case ".webp":
			mime = "image/webp"
		}
		dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
		return imageReadMsg{name: name, dataURL: dataURL}
	}
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sb strings.Builder

	header := titleStyle.Render("  presetdeck  ")
	sb.WriteString(header)
	sb.WriteString("\n")

	tabs := []struct {
		name string
		tab  Tab
	}{
		{"Organizer", TabOrganizer},
		{"Favorites", TabFavorites},
	}

	var tabLine strings.Builder
	for _, t := range tabs {
		label := fmt.Sprintf(" %s ", t.name)
		if m.activeTab == t.tab {
			tabLine.WriteString(tabActiveStyle.Render(label))
		} else {
			tabLine.WriteString(tabInactiveStyle.Render(label))
		}
		tabLine.WriteString(" ")
	}

	if n := m.org.sel.BulkCount(); n > 0 && m.activeTab == TabOrganizer {
		tabLine.WriteString(bulkStyle.Render(fmt.Sprintf(" [%d selected]", n)))
	}
	if m.session.Favorites().Len() > 0 {
		tabLine.WriteString(successStyle.Render(fmt.Sprintf(" [%d ★]", m.session.Favorites().Len())))
	}

	sb.WriteString(tabLine.String())
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")

	switch {
	case m.showHelp:
		sb.WriteString(m.helpView(m.height - 8))
	case m.preview != nil:
		sb.WriteString(m.preview.view(m.width, m.height-6))
	default:
		switch m.activeTab {
		case TabOrganizer:
			sb.WriteString(m.org.view(m.width, m.spinner.View()))
		case TabFavorites:
			sb.WriteString(m.favs.view(m.width))
		}
		if m.dlg != nil {
			sb.WriteString("\n")
			sb.WriteString(m.dlg.view(m.width))
			sb.WriteString("\n")
		}
	}

	statusLine := m.statusMsg
	if statusLine == "" {
		statusLine = m.defaultStatus()
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")
	sb.WriteString(statusBarStyle.Width(m.width).Render(statusLine))

	return sb.String()
}

func (m Model) defaultStatus() string {
	if m.dlg != nil {
		if m.dlg.confirm {
			return "Confirm: y yes, n/Esc cancel"
		}
		return "Enter: accept  Esc: cancel"
	}
	if m.org.drag.Dragging() {
		return "Move: navigate to a folder, m/Enter to drop, Esc to cancel"
	}
	switch m.activeTab {
	case TabOrganizer:
		return "Enter:open/load  v/V:select  m:move  n:new folder  f:★  Space:preview  /:search  ?:help"
	case TabFavorites:
		return "j/k:navigate  Enter:load  f:unfavorite  Space:preview  Tab:organizer  ?:help"
	}
	return ""
}

func (m Model) helpView(maxLines int) string {
	lines := []string{
		"  Keyboard Shortcuts",
		"  ──────────────────",
		"",
		"  Global:",
		"    Tab           Organizer / Favorites",
		"    ?             Toggle help",
		"    q / Ctrl+C    Quit",
		"",
		"  Organizer:",
		"    j/k arrows    Navigate (left/right in grid)",
		"    Enter         Open folder / select preset / load selected",
		"    L             Load selected preset immediately",
		"    Backspace / h Go up one folder",
		"    /             Search as you type",
		"    v / V         Toggle select / range select",
		"    m             Grab item, then m again over a folder to drop",
		"    t             Move selection to a typed folder name",
		"    n / r / D     New folder / rename / delete (with confirm)",
		"    c             Folder color",
		"    i             Attach an image to a preset",
		"    x             Move preset back to top level",
		"    f             Toggle favorite",
		"    Space         Quick-look preview",
		"    s / F         Cycle sort / filter",
		"    g             Grid / list",
		"",
		"  Favorites:",
		"    j/k           Navigate",
		"    Enter         Load",
		"    f             Unfavorite",
		"",
		"  Press ? or Esc to close help.",
	}

	if maxLines < 6 {
		maxLines = 6
	}
	helpOffset := m.helpOffset
	maxOffset := len(lines) - maxLines
	if maxOffset < 0 {
		maxOffset = 0
	}
	if helpOffset > maxOffset {
		helpOffset = maxOffset
	}

	end := helpOffset + maxLines
	if end > len(lines) {
		end = len(lines)
	}
	return helpStyle.Render(strings.Join(lines[helpOffset:end], "\n"))
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusID++
	id := m.statusID
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

// Run starts the TUI.
func Run(c *host.Client, session *organizer.Session, cfg *config.Config, log zerolog.Logger) error {
	m := NewModel(c, session, cfg, log)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Favorites mutations from any surface re-render both tabs.
	session.Favorites().OnChange(func() {
		p.Send(favoritesChangedMsg{})
	})

	_, err := p.Run()
	return err
}
