package organizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func preset(name string, mod time.Time) Item {
	return Item{Kind: KindPreset, ID: name, Name: name, LastModified: mod}
}

func folder(name string) Item {
	return Item{Kind: KindFolder, ID: "id-" + name, Name: name}
}

func TestViewSort_FoldersAlwaysPrecedePresets(t *testing.T) {
	items := []Item{preset("Aaa", time.Time{}), folder("Zzz")}

	for _, mode := range []SortMode{SortNameAsc, SortNameDesc, SortDateAsc, SortDateDesc} {
		v := View{Filter: FilterAll, Sort: mode}
		got := v.Apply(items, nil)
		assert.Equal(t, KindFolder, got[0].Kind, "mode %s", mode)
	}
}

func TestViewSort_NameAscIsLocaleAware(t *testing.T) {
	items := []Item{
		preset("Beta", time.Time{}),
		preset("alpha", time.Time{}),
		preset("Gamma", time.Time{}),
	}

	v := View{Filter: FilterAll, Sort: SortNameAsc}
	got := v.Apply(items, nil)
	assert.Equal(t, []string{"alpha", "Beta", "Gamma"}, itemNames(got))

	v.Sort = SortNameDesc
	got = v.Apply(items, nil)
	assert.Equal(t, []string{"Gamma", "Beta", "alpha"}, itemNames(got))
}

func TestViewSort_DateFallsBackToCreatedThenEpoch(t *testing.T) {
	newer := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	items := []Item{
		preset("Modified", newer),
		{Kind: KindPreset, ID: "CreatedOnly", Name: "CreatedOnly", CreatedAt: older},
		{Kind: KindPreset, ID: "NoDates", Name: "NoDates"},
	}

	v := View{Filter: FilterAll, Sort: SortDateAsc}
	got := v.Apply(items, nil)
	assert.Equal(t, []string{"NoDates", "CreatedOnly", "Modified"}, itemNames(got))

	v.Sort = SortDateDesc
	got = v.Apply(items, nil)
	assert.Equal(t, []string{"Modified", "CreatedOnly", "NoDates"}, itemNames(got))
}

func TestViewSort_IsDeterministicOnEqualDates(t *testing.T) {
	when := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{preset("bbb", when), preset("aaa", when), preset("ccc", when)}

	v := View{Filter: FilterAll, Sort: SortDateDesc}
	got := v.Apply(items, nil)
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, itemNames(got))
}

func TestViewSearch_CaseInsensitiveSubstringOnBothKinds(t *testing.T) {
	items := []Item{folder("Work Stuff"), preset("workout", time.Time{}), preset("Play", time.Time{})}

	v := View{Filter: FilterAll, Sort: SortNameAsc, Search: "WORK"}
	got := v.Apply(items, nil)
	assert.Equal(t, []string{"Work Stuff", "workout"}, itemNames(got))

	v.Search = "   "
	got = v.Apply(items, nil)
	assert.Len(t, got, 3)
}

func TestViewFilter_Favorites(t *testing.T) {
	items := []Item{folder("Work"), preset("Alpha", time.Time{}), preset("Beta", time.Time{})}
	isFav := func(name string) bool { return name == "Alpha" }

	v := View{Filter: FilterFavorites, Sort: SortNameAsc}
	got := v.Apply(items, isFav)

	// Folders are excluded entirely from the favorites view.
	assert.Equal(t, []string{"Alpha"}, itemNames(got))
}

func TestViewFilter_Uncategorized(t *testing.T) {
	inWork := preset("Alpha", time.Time{})
	inWork.FolderID = "work-id"
	items := []Item{inWork, preset("Beta", time.Time{})}

	v := View{Filter: FilterUncategorized, Sort: SortNameAsc}
	got := v.Apply(items, nil)
	assert.Equal(t, []string{"Beta"}, itemNames(got))
}

func TestViewFilter_HasImage(t *testing.T) {
	withImage := preset("Alpha", time.Time{})
	withImage.ImageURL = "data:image/png;base64,AA=="
	items := []Item{folder("Work"), withImage, preset("Beta", time.Time{})}

	v := View{Filter: FilterHasImage, Sort: SortNameAsc}
	got := v.Apply(items, nil)
	assert.Equal(t, []string{"Alpha"}, itemNames(got))
}

func TestViewMode_DoesNotAffectOrdering(t *testing.T) {
	items := []Item{preset("Beta", time.Time{}), preset("alpha", time.Time{})}

	grid := View{Filter: FilterAll, Sort: SortNameAsc, Mode: ViewGrid}
	list := View{Filter: FilterAll, Sort: SortNameAsc, Mode: ViewList}
	assert.Equal(t, itemNames(grid.Apply(items, nil)), itemNames(list.Apply(items, nil)))
}

func TestCycleHelpers(t *testing.T) {
	assert.Equal(t, SortNameDesc, SortNameAsc.Next())
	assert.Equal(t, SortNameAsc, SortDateAsc.Next())
	assert.Equal(t, FilterFavorites, FilterAll.Next())
	assert.Equal(t, FilterAll, FilterHasImage.Next())
}
