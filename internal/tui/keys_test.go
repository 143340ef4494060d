package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()

	if len(k.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}

	total := 0
	for _, col := range k.FullHelp() {
		total += len(col)
	}
	if total != 10 {
		t.Errorf("FullHelp lists %d bindings, want 10", total)
	}

	groups := k.HelpGroups()
	if len(groups) != len(k.FullHelp()) {
		t.Fatalf("got %d groups, want %d", len(groups), len(k.FullHelp()))
	}
	if groups[0].Title != "Plots" || groups[0].Shortcuts[0].Key != "m" {
		t.Errorf("unexpected first group: %+v", groups[0])
	}
}

func TestKeyMapMatches(t *testing.T) {
	k := DefaultKeyMap()
	tests := []struct {
		msg     string
		binding key.Binding
	}{
		{"m", k.ToggleMin},
		{"M", k.ToggleMax},
		{"t", k.Theme},
		{"?", k.Help},
	}
	for _, tt := range tests {
		if !key.Matches(keyRune([]rune(tt.msg)[0]), tt.binding) {
			t.Errorf("%q should match %v", tt.msg, tt.binding.Help().Desc)
		}
	}
}
