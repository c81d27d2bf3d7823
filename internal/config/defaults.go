package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		TickRate: 12,
		Seed:     0,
		Theme: ThemeConfig{
			Background:    "#000000",
			Board:         "#1c1c1c",
			Checker:       "#282828",
			Snake:         "#90ee90",
			Food:          "#dc143c",
			FoodGlow:      "#ff6464",
			Text:          "#ffffff",
			Muted:         "#a9a9a9",
			RestartButton: "#9370db",
			QuitButton:    "#dc143c",
			Banner:        "#dc143c",
		},
	}
}
