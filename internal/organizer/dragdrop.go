package organizer

// Move is the command a completed drop produces: move Identity into
// TargetFolderID.
type Move struct {
	Identity       string
	TargetFolderID string
}

// Drag converts a grab-hover-drop gesture into a Move. Only folders are
// valid drop targets; at most one target is highlighted at a time.
type Drag struct {
	payload string
	active  bool
	target  string
}

// Start begins a drag over the given item. Starting anywhere else rejects
// the gesture.
func (d *Drag) Start(it *Item) bool {
	if it == nil {
		return false
	}
	d.payload = it.ID
	d.active = true
	d.target = ""
	return true
}

// Hover updates the highlighted drop target. Hovering a folder highlights
// it (and un-highlights the previous target); hovering a preset or empty
// space clears the highlight.
func (d *Drag) Hover(it *Item) {
	if !d.active {
		return
	}
	if it != nil && it.Kind == KindFolder {
		d.target = it.ID
		return
	}
	d.target = ""
}

// Dragging reports whether a gesture is in progress.
func (d *Drag) Dragging() bool {
	return d.active
}

// Payload returns the identity being dragged.
func (d *Drag) Payload() string {
	return d.payload
}

// Target returns the currently highlighted folder id, or empty.
func (d *Drag) Target() string {
	return d.target
}

// Drop completes the gesture. Over a highlighted folder it yields the move
// command; anywhere else it is a no-op. Either way the gesture ends.
func (d *Drag) Drop() (Move, bool) {
	payload, target := d.payload, d.target
	d.Cancel()
	if payload == "" || target == "" {
		return Move{}, false
	}
	return Move{Identity: payload, TargetFolderID: target}, true
}

// Cancel abandons the gesture and clears all highlight state.
func (d *Drag) Cancel() {
	d.payload = ""
	d.active = false
	d.target = ""
}
