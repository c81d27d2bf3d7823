package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme holds the colors the renderer uses.
type Theme struct {
	Background    core.Color
	Board         core.Color
	Checker       core.Color
	Snake         core.Color
	Food          core.Color
	FoodGlow      core.Color
	Text          core.Color
	Muted         core.Color
	RestartButton core.Color
	QuitButton    core.Color
	Banner        core.Color
}

// ThemeFromConfig converts a theme section of the YAML config.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	return Theme{
		Background:    core.Color(tc.Background),
		Board:         core.Color(tc.Board),
		Checker:       core.Color(tc.Checker),
		Snake:         core.Color(tc.Snake),
		Food:          core.Color(tc.Food),
		FoodGlow:      core.Color(tc.FoodGlow),
		Text:          core.Color(tc.Text),
		Muted:         core.Color(tc.Muted),
		RestartButton: core.Color(tc.RestartButton),
		QuitButton:    core.Color(tc.QuitButton),
		Banner:        core.Color(tc.Banner),
	}
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.DefaultSnakeConfig().Theme)
}
