package ui

import "testing"

func TestGetThemeFallsBack(t *testing.T) {
	if got := GetTheme("Solarized"); got.Name != "Solarized" {
		t.Fatalf("GetTheme = %q, want Solarized", got.Name)
	}
	if got := GetTheme("no-such-theme"); got.Name != themes[0].Name {
		t.Fatalf("fallback theme = %q, want %q", got.Name, themes[0].Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[string]bool{}
	name := themes[0].Name
	for range themes {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themes[0].Name {
		t.Fatalf("cycle did not wrap: ended at %q", name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themes))
	}

	if got := NextTheme("no-such-theme"); got != themes[0].Name {
		t.Fatalf("unknown theme should restart the cycle, got %q", got)
	}
}
