// Package glview is the interactive window: glfw for the window, input and
// timer, and the OpenGL 2.1 fixed-function pipeline to draw the rig's draw
// list through the matrix stack.
package glview

import (
	"image/color"
	"runtime"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"robot-rig/internal/anim"
	"robot-rig/internal/log"
	"robot-rig/internal/rig"
	"robot-rig/internal/viewmatrix"
)

// Options configures the window.
type Options struct {
	Width      int
	Height     int
	Title      string
	Camera     viewmatrix.Camera
	Background color.NRGBA
}

// Run opens the window and drives a until the window is closed or Escape is
// pressed. It must be called from the main goroutine.
func Run(a *anim.Animator, b *rig.Builder, opts Options, logger log.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if logger == nil {
		logger = log.Discard()
	}
	if opts.Title == "" {
		opts.Title = "robot"
	}

	window, err := initWindow(opts.Width, opts.Height, opts.Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "glview: gl init")
	}
	logger.Debugf("glview: OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	press := func(k anim.Key) {
		gait, cannon := a.Gait(), a.Cannon()
		if !a.OnKey(k) {
			return
		}
		if a.Gait() != gait || a.Cannon() != cannon {
			logger.Debugf("glview: key %s: gait %s, cannon %s", k, a.Gait(), a.Cannon())
		}
	}

	window.SetCharCallback(func(_ *glfw.Window, char rune) {
		press(anim.Key(char))
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		if k, ok := specialKey(key); ok {
			press(k)
		}
	})

	initGL(opts.Background)

	clock := anim.NewClock(a.Settings().Tick)
	var calls []rig.DrawCall

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		elapsed := time.Duration((now - last) * float64(time.Second))
		last = now

		for n := clock.Advance(elapsed); n > 0; n-- {
			a.OnTick()
		}

		fbW, fbH := window.GetFramebufferSize()
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		setCamera(opts.Camera, fbW, fbH)

		calls = b.AppendBuild(calls[:0], a.Pose())
		drawCalls(calls, b.Table())

		window.SwapBuffers()
		glfw.PollEvents()
	}

	logger.Infof("glview: closed after %d ticks", a.Ticks())
	return nil
}
