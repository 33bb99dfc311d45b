package cli

import (
	"fmt"
	"os"

	"github.com/codalotl/gridfmt/style"
	"github.com/pelletier/go-toml/v2"
)

// Config is gridfmt's optional TOML config file.
type Config struct {
	Style StyleConfig `toml:"style"`
}

// StyleConfig describes the SGR attributes applied to rendered lines.
type StyleConfig struct {
	Bold          bool `toml:"bold"`
	Faint         bool `toml:"faint"`
	Italic        bool `toml:"italic"`
	Underline     bool `toml:"underline"`
	Strikethrough bool `toml:"strikethrough"`

	// Blink is "", "slow", or "fast".
	Blink string `toml:"blink"`

	// Color names like "red" or "bright-blue"; empty leaves them unset.
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Style resolves the config into a style.Style.
func (sc StyleConfig) Style() (style.Style, error) {
	st := style.Style{}.
		WithBold(sc.Bold).
		WithFaint(sc.Faint).
		WithItalic(sc.Italic).
		WithUnderline(sc.Underline).
		WithStrikethrough(sc.Strikethrough)

	switch sc.Blink {
	case "":
	case "slow":
		st = st.WithBlink(style.BlinkSlow)
	case "fast":
		st = st.WithBlink(style.BlinkFast)
	default:
		return style.Style{}, fmt.Errorf("invalid blink speed: %q (want slow or fast)", sc.Blink)
	}

	fg, err := style.ParseColor(sc.Foreground)
	if err != nil {
		return style.Style{}, err
	}
	bg, err := style.ParseColor(sc.Background)
	if err != nil {
		return style.Style{}, err
	}

	return st.WithForeground(fg).WithBackground(bg), nil
}
