package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"go.viam.com/test"

	"robot-rig/internal/raster"
	"robot-rig/internal/sequence"
	"robot-rig/internal/viewmatrix"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})

	test.That(t, c.OutputDir, test.ShouldEqual, "frames")
	test.That(t, c.Width, test.ShouldEqual, 640)
	test.That(t, c.Height, test.ShouldEqual, 480)
	test.That(t, c.Supersample, test.ShouldEqual, 2)
	test.That(t, c.Format, test.ShouldEqual, "webp")
	test.That(t, c.Workers, test.ShouldEqual, runtime.NumCPU())
	test.That(t, c.FrameEvery, test.ShouldEqual, 1)
	test.That(t, c.Animation.HipStep, test.ShouldEqual, 2.0)
	test.That(t, c.Animation.Tick, test.ShouldEqual, 10*time.Millisecond)
	test.That(t, c.Script, test.ShouldResemble, sequence.DefaultScript())
	test.That(t, *c.Camera, test.ShouldResemble, viewmatrix.DefaultCamera())
	test.That(t, c.BackgroundColor(), test.ShouldResemble, raster.DefaultBackground)
	test.That(t, c.Validate(), test.ShouldBeNil)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robot.yaml")
	doc := `
output_dir: out
part_table: parts/robot.yaml
width: 320
format: tga
annotate: true
background: [10, 20, 30, 255]
orbit: 90
camera:
  eye: [0, 6, 22]
animation:
  hip_step: 3
  tick: 20ms
script:
  - key: w
    ticks: 16
  - key: c
    ticks: 73
`
	test.That(t, os.WriteFile(path, []byte(doc), 0644), test.ShouldBeNil)

	c, err := Load(path)
	test.That(t, err, test.ShouldBeNil)
	c.Resolve(Flags{Width: 100, Workers: 3})

	test.That(t, c.OutputDir, test.ShouldEqual, filepath.Join(dir, "out"))
	test.That(t, c.PartTable, test.ShouldEqual, filepath.Join(dir, "parts", "robot.yaml"))
	test.That(t, c.Width, test.ShouldEqual, 100)
	test.That(t, c.Height, test.ShouldEqual, 480)
	test.That(t, c.Workers, test.ShouldEqual, 3)
	test.That(t, c.Format, test.ShouldEqual, "tga")
	test.That(t, c.Annotate, test.ShouldBeTrue)
	test.That(t, c.Animation.HipStep, test.ShouldEqual, 3.0)
	test.That(t, c.Animation.KneeStep, test.ShouldEqual, 1.0)
	test.That(t, c.Animation.Tick, test.ShouldEqual, 20*time.Millisecond)
	test.That(t, c.Script, test.ShouldResemble, sequence.Script{{Key: "w", Ticks: 16}, {Key: "c", Ticks: 73}})

	bg := c.BackgroundColor()
	test.That(t, bg.R, test.ShouldEqual, uint8(10))
	test.That(t, bg.B, test.ShouldEqual, uint8(30))

	// A partial camera keeps the default up vector and lens.
	test.That(t, c.Camera.Up, test.ShouldResemble, viewmatrix.DefaultCamera().Up)
	test.That(t, c.Camera.FOV, test.ShouldEqual, viewmatrix.DefaultFOV)
	cam := c.ViewCamera()
	test.That(t, cam.Eye[0], test.ShouldAlmostEqual, 22.0, 1e-9)

	test.That(t, c.Validate(), test.ShouldBeNil)
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robot.json")
	doc := `{"output_dir": "/abs/frames", "supersample": 3, "frame_every": 4, "workers": 2}`
	test.That(t, os.WriteFile(path, []byte(doc), 0644), test.ShouldBeNil)

	c, err := Load(path)
	test.That(t, err, test.ShouldBeNil)
	c.Resolve(Flags{OutputDir: "cli-out", FrameEvery: 2})

	// Flag paths are taken as given.
	test.That(t, c.OutputDir, test.ShouldEqual, "cli-out")
	test.That(t, c.Supersample, test.ShouldEqual, 3)
	test.That(t, c.FrameEvery, test.ShouldEqual, 2)
	test.That(t, c.Workers, test.ShouldEqual, 2)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "config: read")

	bad := filepath.Join(dir, "bad.json")
	test.That(t, os.WriteFile(bad, []byte("{"), 0644), test.ShouldBeNil)
	_, err = Load(bad)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "config: parse")
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
		err  string
	}{
		{"format", Config{Format: "gif"}, "unknown format"},
		{"script", Config{Script: sequence.Script{{Key: "ww"}}}, "bad key"},
		{"animate tga", Config{Format: "tga", Animate: true}, "animate"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.cfg
			c.Resolve(Flags{})
			err := c.Validate()
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.err)
		})
	}
}
