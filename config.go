package volume

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BeatGlow/volume/pixel"
)

// Library wide defaults.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
	DefaultLength = 256
)

var defaultSize = Point{DefaultWidth, DefaultHeight, DefaultLength}

// DefaultSize returns the size used by [NewDefault] as (width, height, length).
func DefaultSize() Point {
	return defaultSize
}

// SetDefaultSize changes the size used by [NewDefault].
func SetDefaultSize(width, height, length int) error {
	if width <= 0 || height <= 0 || length <= 0 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidSize, width, height, length)
	}
	defaultSize = Point{width, height, length}
	return nil
}

// Config is the TOML configuration of the library defaults and logging.
type Config struct {
	Volume VolumeConfig
	Log    LogConfig
}

// VolumeConfig holds the defaults for new volumes.
type VolumeConfig struct {
	Width  int
	Height int
	Length int
	Depth  pixel.Depth
	Grid   Grid
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Volume: VolumeConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Length: DefaultLength,
			Depth:  pixel.Gray,
			Grid:   Cubic,
		},
	}
}

// LoadConfig reads a TOML configuration file. Missing keys keep their [DefaultConfig] value.
func LoadConfig(filename string) (*Config, error) {
	c := DefaultConfig()
	if _, err := toml.DecodeFile(filename, c); err != nil {
		return nil, fmt.Errorf("volume: could not decode TOML config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DecodeConfig parses a TOML configuration. Missing keys keep their [DefaultConfig] value.
func DecodeConfig(data string) (*Config, error) {
	c := DefaultConfig()
	if _, err := toml.Decode(data, c); err != nil {
		return nil, fmt.Errorf("volume: could not decode TOML config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	v := c.Volume
	if v.Width <= 0 || v.Height <= 0 || v.Length <= 0 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidSize, v.Width, v.Height, v.Length)
	}
	if !v.Depth.Valid() {
		return fmt.Errorf("%w: %d", pixel.ErrDepth, uint8(v.Depth))
	}
	if !v.Grid.Valid() {
		return fmt.Errorf("volume: invalid grid %d", uint8(v.Grid))
	}
	return nil
}

// Apply makes the configuration the library wide default and sets up logging.
func (c *Config) Apply() error {
	if err := c.validate(); err != nil {
		return err
	}
	if err := SetDefaultSize(c.Volume.Width, c.Volume.Height, c.Volume.Length); err != nil {
		return err
	}
	if err := SetDefaultGrid(c.Volume.Grid); err != nil {
		return err
	}
	c.Log.SetLogger()
	Debugf("volume: defaults %dx%dx%d %s on %s grid", c.Volume.Width, c.Volume.Height, c.Volume.Length,
		c.Volume.Depth, c.Volume.Grid)
	return nil
}
