package organizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedRow() []Item {
	return []Item{
		preset("PresetB", time.Time{}),
		preset("PresetC", time.Time{}),
		preset("PresetD", time.Time{}),
	}
}

func TestClick_PresetSelectsAndAnchors(t *testing.T) {
	sel := NewSelection()
	row := renderedRow()

	res := sel.Click(row[0])
	assert.Equal(t, ClickSelected, res)
	require.NotNil(t, sel.Current)
	assert.Equal(t, "PresetB", sel.Current.Name)
	assert.Zero(t, sel.BulkCount())
}

func TestClick_FolderNavigatesAndClearsBulk(t *testing.T) {
	sel := NewSelection()
	row := renderedRow()
	sel.Toggle(row[0])
	sel.Toggle(row[1])
	require.Equal(t, 2, sel.BulkCount())

	res := sel.Click(folder("Work"))
	assert.Equal(t, ClickNavigate, res)
	assert.Zero(t, sel.BulkCount())
}

func TestToggle_FlipsMembershipAndMovesAnchor(t *testing.T) {
	sel := NewSelection()
	row := renderedRow()

	sel.Toggle(row[1])
	assert.True(t, sel.InBulk("PresetC"))

	sel.Toggle(row[1])
	assert.False(t, sel.InBulk("PresetC"))

	// Anchor followed the toggle: a range from here spans C..D.
	sel.Toggle(row[1])
	sel.Range(row, row[2])
	assert.False(t, sel.InBulk("PresetB"))
	assert.True(t, sel.InBulk("PresetC"))
	assert.True(t, sel.InBulk("PresetD"))
}

func TestRange_AnchorToClickedInclusive(t *testing.T) {
	sel := NewSelection()
	row := renderedRow()

	sel.Click(row[0]) // anchor = B
	sel.Range(row, row[2])

	assert.Equal(t, []string{"PresetB", "PresetC", "PresetD"}, sel.BulkIDs(row))
}

func TestRange_ReversedDirection(t *testing.T) {
	sel := NewSelection()
	row := renderedRow()

	sel.Click(row[2]) // anchor = D
	sel.Range(row, row[0])

	assert.Equal(t, 3, sel.BulkCount())
}

func TestRange_NoOpWhenAnchorFilteredOut(t *testing.T) {
	sel := NewSelection()
	row := renderedRow()

	sel.Click(row[0]) // anchor = B
	filtered := row[1:] // B no longer rendered
	sel.Range(filtered, filtered[1])

	assert.Zero(t, sel.BulkCount())
}

func TestRange_NoOpWithoutAnchor(t *testing.T) {
	sel := NewSelection()
	row := renderedRow()

	sel.Range(row, row[1])
	assert.Zero(t, sel.BulkCount())
}

func TestBulkIDs_FollowRenderedOrder(t *testing.T) {
	sel := NewSelection()
	row := renderedRow()
	sel.Toggle(row[2])
	sel.Toggle(row[0])

	assert.Equal(t, []string{"PresetB", "PresetD"}, sel.BulkIDs(row))
}

func TestReset(t *testing.T) {
	sel := NewSelection()
	row := renderedRow()
	sel.Click(row[0])
	sel.Toggle(row[1])

	sel.Reset()
	assert.Nil(t, sel.Current)
	assert.Zero(t, sel.BulkCount())
	sel.Range(row, row[2])
	assert.Zero(t, sel.BulkCount(), "reset must drop the anchor")
}
