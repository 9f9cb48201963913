package organizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrag_StartRequiresAnItem(t *testing.T) {
	var d Drag
	assert.False(t, d.Start(nil))
	assert.False(t, d.Dragging())

	it := preset("Alpha", time.Time{})
	assert.True(t, d.Start(&it))
	assert.True(t, d.Dragging())
	assert.Equal(t, "Alpha", d.Payload())
}

func TestDrag_OnlyFoldersHighlight(t *testing.T) {
	var d Drag
	it := preset("Alpha", time.Time{})
	require.True(t, d.Start(&it))

	work := folder("Work")
	d.Hover(&work)
	assert.Equal(t, work.ID, d.Target())

	// Hovering another folder moves the single highlight.
	play := folder("Play")
	d.Hover(&play)
	assert.Equal(t, play.ID, d.Target())

	// Hovering a preset or empty space clears it.
	other := preset("Beta", time.Time{})
	d.Hover(&other)
	assert.Empty(t, d.Target())
	d.Hover(&play)
	d.Hover(nil)
	assert.Empty(t, d.Target())
}

func TestDrag_DropOnTargetYieldsMove(t *testing.T) {
	var d Drag
	it := preset("Alpha", time.Time{})
	work := folder("Work")
	require.True(t, d.Start(&it))
	d.Hover(&work)

	move, ok := d.Drop()
	require.True(t, ok)
	assert.Equal(t, Move{Identity: "Alpha", TargetFolderID: work.ID}, move)
	assert.False(t, d.Dragging())
}

func TestDrag_DropElsewhereIsNoOp(t *testing.T) {
	var d Drag
	it := preset("Alpha", time.Time{})
	require.True(t, d.Start(&it))

	_, ok := d.Drop()
	assert.False(t, ok)
	assert.False(t, d.Dragging())
}

func TestDrag_Cancel(t *testing.T) {
	var d Drag
	it := preset("Alpha", time.Time{})
	work := folder("Work")
	require.True(t, d.Start(&it))
	d.Hover(&work)

	d.Cancel()
	assert.False(t, d.Dragging())
	_, ok := d.Drop()
	assert.False(t, ok)
}
