package gconf

import (
	"errors"
	"fmt"
	"os"
	"schack/ui/gui/gbase"
	"schack/ui/gui/gselect"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "schack.yaml"

// Variant names the board frame.
const (
	VariantBordered = "bordered" // one tile of margin around the board
	VariantCompact  = "compact"  // board fills the window
)

type Config struct {
	Title     string `yaml:"title"`
	Icon      string `yaml:"icon"`       // file name inside assets_dir
	AssetsDir string `yaml:"assets_dir"` // piece sprites, shadow and icon
	TileSize  int    `yaml:"tile_size"`  // pixels per square
	Variant   string `yaml:"variant"`    // bordered/compact
	ClickMode string `yaml:"click_mode"` // cancel/reselect
	Flipped   bool   `yaml:"flipped"`    // rank 1 on top
	Shadow    bool   `yaml:"shadow"`     // shadow sprite under pieces
	PixelArt  bool   `yaml:"pixel_art"`  // nearest filter for sprites
	Theme     string `yaml:"theme"`      // classic/dark
	Lang      string `yaml:"language"`   // en/ru
	Debug     bool   `yaml:"debug"`      //

	path string
}

func DefaultConfig() Config {
	return Config{
		Title:     "Schack",
		Icon:      gbase.IconFile,
		AssetsDir: "./res",
		TileSize:  gbase.DefaultTileSize,
		Variant:   VariantBordered,
		ClickMode: gselect.ModeCancel.String(),
		Flipped:   false,
		Shadow:    true,
		PixelArt:  true,
		Theme:     "classic",
		Lang:      "en",
		Debug:     false,
		path:      DefaultFile,
	}
}

// NewGUIConfig reads file, or returns defaults when it does not exist.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		def := DefaultConfig()
		def.path = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	c.path = file
	c.Correct()

	return &c, nil
}

func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}

// Correct replaces invalid values with defaults.
func (c *Config) Correct() {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
	if c.Icon == "" {
		c.Icon = def.Icon
	}
	if c.TileSize < gbase.MinTileSize || c.TileSize > gbase.MaxTileSize {
		c.TileSize = def.TileSize
	}
	if c.Variant != VariantBordered && c.Variant != VariantCompact {
		c.Variant = def.Variant
	}
	if _, err := gselect.ParseMode(c.ClickMode); err != nil || c.ClickMode == "" {
		c.ClickMode = def.ClickMode
	}
	if c.Theme != "classic" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
}

var ErrBadVariant = errors.New("unknown board variant")

// SetVariant applies a variant given on the command line.
func (c *Config) SetVariant(v string) error {
	if v != VariantBordered && v != VariantCompact {
		return fmt.Errorf("%w: %q", ErrBadVariant, v)
	}
	c.Variant = v
	return nil
}

// SetClickMode applies a click mode given on the command line.
func (c *Config) SetClickMode(m string) error {
	if _, err := gselect.ParseMode(m); err != nil {
		return err
	}
	c.ClickMode = m
	return nil
}

// Mode is the parsed click_mode.
func (c *Config) Mode() gselect.Mode {
	m, _ := gselect.ParseMode(c.ClickMode)
	return m
}

// MarginTiles is the border width in tiles for the configured variant.
func (c *Config) MarginTiles() int {
	if c.Variant == VariantCompact {
		return 0
	}
	return 1
}
