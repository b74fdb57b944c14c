package glview

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"robot-rig/internal/anim"
)

// initWindow opens a window with a legacy 2.1 context; the renderer uses the
// fixed-function matrix stack.
func initWindow(width, height int, title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glview: glfw init")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "glview: create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// specialKey maps the non-printing keys the animator understands.
func specialKey(k glfw.Key) (anim.Key, bool) {
	switch k {
	case glfw.KeyLeft:
		return anim.KeyLeft, true
	case glfw.KeyRight:
		return anim.KeyRight, true
	case glfw.KeyUp:
		return anim.KeyUp, true
	case glfw.KeyDown:
		return anim.KeyDown, true
	}
	return 0, false
}
