package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"mapview/canvas"
	"mapview/engine"
)

const (
	// --- Files ---
	DefaultImagePath  = "map.png"
	DefaultConfigPath = "mapview.yaml"
	DefaultViewPath   = "view.yaml"
	ScreenshotPath    = "screenshot.png"

	// --- Window ---
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	WindowTitle         = "Map Viewer"

	// --- Zoom ---
	DefaultSmoothing = 0.2 // used by --smooth when the config leaves it at 0

	// --- Grid ---
	GridSize = 100.0 // image pixels

	// --- UI ---
	ReadoutPadding = 10
)

var (
	ColorBackground = color.RGBA{30, 30, 35, 255}
	ColorGrid       = color.RGBA{255, 255, 255, 40}
	ColorImageEdge  = color.RGBA{255, 100, 100, 150}
)

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ZoomConfig struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Strength  float64 `yaml:"strength"`
	Mode      string  `yaml:"mode"`
	Smoothing float64 `yaml:"smoothing"`
}

// ReadoutConfig selects the secondary coordinate system shown under the cursor.
type ReadoutConfig struct {
	Enabled bool    `yaml:"enabled"`
	Mode    string  `yaml:"mode"` // "affine" or "script"
	A       float64 `yaml:"a"`
	B       float64 `yaml:"b"`
	C       float64 `yaml:"c"`
	D       float64 `yaml:"d"`
	Script  string  `yaml:"script"` // path to a Starlark file defining transform(x, y)
	Label   string  `yaml:"label"`
}

type Config struct {
	Image    string        `yaml:"image"`
	ViewFile string        `yaml:"view_file"`
	Watch    bool          `yaml:"watch"`
	Clamp    bool          `yaml:"clamp"`
	Grid     bool          `yaml:"grid"`
	Window   WindowConfig  `yaml:"window"`
	Zoom     ZoomConfig    `yaml:"zoom"`
	Readout  ReadoutConfig `yaml:"readout"`
}

func DefaultConfig() Config {
	l := canvas.DefaultLimits()
	return Config{
		Image:    DefaultImagePath,
		ViewFile: DefaultViewPath,
		Watch:    true,
		Clamp:    l.Clamp,
		Window:   WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
		Zoom: ZoomConfig{
			Min:      l.MinScale,
			Max:      l.MaxScale,
			Strength: l.ZoomStrength,
			Mode:     string(l.ZoomMode),
		},
		Readout: ReadoutConfig{
			Enabled: true,
			Mode:    "affine",
			A:       1,
			C:       1,
			Label:   "Map",
		},
	}
}

// LoadConfig overlays the YAML file at path onto the defaults. A missing
// file is only an error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Limits() canvas.Limits {
	l := canvas.DefaultLimits()
	l.MinScale = c.Zoom.Min
	l.MaxScale = c.Zoom.Max
	l.ZoomStrength = c.Zoom.Strength
	l.ZoomMode = canvas.ZoomMode(c.Zoom.Mode)
	l.Smoothing = c.Zoom.Smoothing
	l.Clamp = c.Clamp
	return l
}

func (c Config) Validate() error {
	if err := c.Limits().Validate(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Readout.Mode {
	case "affine":
	case "script":
		if c.Readout.Script == "" {
			return errors.New("readout mode script needs a script path")
		}
	default:
		return fmt.Errorf("unknown readout mode %q", c.Readout.Mode)
	}
	return nil
}

// Transform builds the readout transform described by the config.
func (c Config) Transform() (engine.Transform, error) {
	if c.Readout.Mode != "script" {
		r := c.Readout
		return engine.Affine{A: r.A, B: r.B, C: r.C, D: r.D}, nil
	}
	src, err := os.ReadFile(c.Readout.Script)
	if err != nil {
		return nil, fmt.Errorf("reading readout script: %w", err)
	}
	return engine.CompileScript(c.Readout.Script, string(src))
}
