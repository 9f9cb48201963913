package host

import (
	"strings"
	"testing"
)

func TestParsePresetOptions_FiltersSentinels(t *testing.T) {
	page := `
<html><body>
<select data-preset-family="chat">
  <option value="p1">Alpha</option>
  <option value="---">──────</option>
  <option value="p2">== Headers ==</option>
  <option value="">No Value</option>
  <option value="p3"></option>
  <option value="p4">Beta</option>
</select>
</body></html>`

	presets, err := parsePresetOptions(strings.NewReader(page), "chat")
	if err != nil {
		t.Fatalf("parsePresetOptions returned error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d: %+v", len(presets), presets)
	}
	if presets[0].Name != "Alpha" || presets[0].Ref != "p1" {
		t.Fatalf("unexpected first preset: %+v", presets[0])
	}
	if presets[1].Name != "Beta" || presets[1].Ref != "p4" {
		t.Fatalf("unexpected second preset: %+v", presets[1])
	}
}

func TestParsePresetOptions_PicksMatchingFamily(t *testing.T) {
	page := `
<html><body>
<select data-preset-family="text"><option value="t1">Text One</option></select>
<select data-preset-family="chat"><option value="c1">Chat One</option></select>
</body></html>`

	presets, err := parsePresetOptions(strings.NewReader(page), "chat")
	if err != nil {
		t.Fatalf("parsePresetOptions returned error: %v", err)
	}
	if len(presets) != 1 || presets[0].Ref != "c1" {
		t.Fatalf("expected only the chat preset, got %+v", presets)
	}
}

func TestParsePresetOptions_MissingSelect(t *testing.T) {
	page := `<html><body><p>nothing here</p></body></html>`

	if _, err := parsePresetOptions(strings.NewReader(page), "chat"); err == nil {
		t.Fatal("expected an error when no select matches the family")
	}
}

func TestParsePresetOptions_DedupByName(t *testing.T) {
	page := `
<html><body>
<select data-preset-family="chat">
  <option value="a1">Same</option>
  <option value="a2">Same</option>
</select>
</body></html>`

	presets, err := parsePresetOptions(strings.NewReader(page), "chat")
	if err != nil {
		t.Fatalf("parsePresetOptions returned error: %v", err)
	}
	if len(presets) != 1 || presets[0].Ref != "a1" {
		t.Fatalf("expected first occurrence to win, got %+v", presets)
	}
}
