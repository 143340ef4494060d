package styles

import (
	"testing"

	"github.com/Fjolfrin/tbtui/internal/config"
)

func TestForName(t *testing.T) {
	if ForName(config.ThemeLight).Name != config.ThemeLight {
		t.Error("light theme not found")
	}
	if ForName("neon").Name != config.ThemeDark {
		t.Error("unknown themes should fall back to dark")
	}
}

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply(Dark) })

	Apply(Light)
	if Current.Name != config.ThemeLight {
		t.Errorf("Current = %v, want light", Current.Name)
	}
	if Foreground != Light.Foreground {
		t.Error("Apply should update the palette variables")
	}
	if Light.PlotPalette().Line != Light.Secondary {
		t.Error("plot line should use the secondary color")
	}
}
