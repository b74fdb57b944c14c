// Package config loads the render/viewer settings file and merges CLI
// overrides into it.
package config

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"robot-rig/internal/anim"
	"robot-rig/internal/mathutil"
	"robot-rig/internal/raster"
	"robot-rig/internal/sequence"
	"robot-rig/internal/viewmatrix"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	PartTable string `json:"part_table,omitempty" yaml:"part_table,omitempty"`

	// Render settings
	Width        int                `json:"width" yaml:"width"`
	Height       int                `json:"height" yaml:"height"`
	Supersample  int                `json:"supersample" yaml:"supersample"`
	Format       string             `json:"format" yaml:"format"`
	WebPExtended bool               `json:"webp_extended,omitempty" yaml:"webp_extended,omitempty"`
	Animate      bool               `json:"animate,omitempty" yaml:"animate,omitempty"`
	Annotate     bool               `json:"annotate,omitempty" yaml:"annotate,omitempty"`
	Background   *[4]uint8          `json:"background,omitempty" yaml:"background,omitempty,flow"`
	Camera       *viewmatrix.Camera `json:"camera,omitempty" yaml:"camera,omitempty"`
	Orbit        float64            `json:"orbit,omitempty" yaml:"orbit,omitempty"`
	Workers      int                `json:"workers" yaml:"workers"`
	FrameEvery   int                `json:"frame_every" yaml:"frame_every"`

	// Animation
	Animation anim.Settings   `json:"animation" yaml:"animation"`
	Script    sequence.Script `json:"script,omitempty" yaml:"script,omitempty"`

	// dir is the directory of the loaded file; relative paths resolve
	// against it.
	dir string
}

// Load reads a config file. Files ending in .json are parsed as JSON,
// anything else as YAML. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: read %s", path)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: parse %s", path)
	}

	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Resolve applies CLI overrides, resolves relative paths and fills in
// defaults for anything still unset. CLI flags take priority when
// non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// File paths are relative to the file, flag paths to the working
	// directory.
	if c.dir != "" {
		if c.OutputDir != "" && !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(c.dir, c.OutputDir)
		}
		if c.PartTable != "" && !filepath.IsAbs(c.PartTable) {
			c.PartTable = filepath.Join(c.dir, c.PartTable)
		}
	}

	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.PartTable != "" {
		c.PartTable = flags.PartTable
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.FrameEvery > 0 {
		c.FrameEvery = flags.FrameEvery
	}
	if flags.Annotate {
		c.Annotate = true
	}
	if flags.Animate {
		c.Animate = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Format == "" {
		c.Format = string(sequence.FormatWebP)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FrameEvery <= 0 {
		c.FrameEvery = 1
	}
	if c.Camera == nil {
		cam := viewmatrix.DefaultCamera()
		c.Camera = &cam
	} else {
		def := viewmatrix.DefaultCamera()
		if c.Camera.FOV <= 0 {
			c.Camera.FOV = def.FOV
		}
		if c.Camera.Near <= 0 {
			c.Camera.Near = def.Near
		}
		if c.Camera.Up == (mathutil.Vec3{}) {
			c.Camera.Up = def.Up
		}
	}
	c.Animation = anim.DefaultSettings().Merge(c.Animation)
	if len(c.Script) == 0 {
		c.Script = sequence.DefaultScript()
	}
}

// Validate reports settings that no default can repair.
func (c *Config) Validate() error {
	if _, err := sequence.ParseFormat(c.Format); err != nil {
		return errors.Wrap(err, "config")
	}
	if err := c.Script.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}
	if c.Animate && !strings.EqualFold(c.Format, string(sequence.FormatWebP)) {
		return errors.Errorf("config: animate needs format webp, have %s", c.Format)
	}
	return nil
}

// BackgroundColor returns the configured clear colour or the default grey.
func (c *Config) BackgroundColor() color.NRGBA {
	if c.Background == nil {
		return raster.DefaultBackground
	}
	b := c.Background
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// ViewCamera returns the resolved camera orbited by Orbit degrees.
func (c *Config) ViewCamera() viewmatrix.Camera {
	cam := viewmatrix.DefaultCamera()
	if c.Camera != nil {
		cam = *c.Camera
	}
	if c.Orbit != 0 {
		cam = cam.Orbit(c.Orbit)
	}
	return cam
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	PartTable   string
	Width       int
	Height      int
	Supersample int
	Format      string
	Workers     int
	FrameEvery  int
	Annotate    bool
	Animate     bool
}
