// Package config provides YAML-based configuration loading for the game.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	TickRate int         `yaml:"tick_rate"`
	Seed     int64       `yaml:"seed"`
	Theme    ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds the screen colors as hex strings ("#rrggbb").
type ThemeConfig struct {
	Background    string `yaml:"background"`
	Board         string `yaml:"board"`
	Checker       string `yaml:"checker"`
	Snake         string `yaml:"snake"`
	Food          string `yaml:"food"`
	FoodGlow      string `yaml:"food_glow"`
	Text          string `yaml:"text"`
	Muted         string `yaml:"muted"`
	RestartButton string `yaml:"restart_button"`
	QuitButton    string `yaml:"quit_button"`
	Banner        string `yaml:"banner"`
}

// Normalize replaces missing or invalid values with defaults.
func (c *SnakeConfig) Normalize() {
	def := DefaultSnakeConfig()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Seed < 0 {
		c.Seed = def.Seed
	}

	fill := func(dst *string, fallback string) {
		if !isHexColor(*dst) {
			*dst = fallback
		}
	}
	fill(&c.Theme.Background, def.Theme.Background)
	fill(&c.Theme.Board, def.Theme.Board)
	fill(&c.Theme.Checker, def.Theme.Checker)
	fill(&c.Theme.Snake, def.Theme.Snake)
	fill(&c.Theme.Food, def.Theme.Food)
	fill(&c.Theme.FoodGlow, def.Theme.FoodGlow)
	fill(&c.Theme.Text, def.Theme.Text)
	fill(&c.Theme.Muted, def.Theme.Muted)
	fill(&c.Theme.RestartButton, def.Theme.RestartButton)
	fill(&c.Theme.QuitButton, def.Theme.QuitButton)
	fill(&c.Theme.Banner, def.Theme.Banner)
}

// isHexColor reports whether s looks like "#rrggbb".
func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
