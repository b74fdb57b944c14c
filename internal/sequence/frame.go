package sequence

import (
	"fmt"

	"robot-rig/internal/anim"
	"robot-rig/internal/pose"
)

// Frame is a snapshot of the animator at one tick.
type Frame struct {
	Index  int
	Tick   uint64
	Pose   pose.Pose
	Gait   anim.State
	Cannon anim.State
}

// HUD returns the overlay lines drawn on annotated frames.
func (f Frame) HUD() []string {
	p := f.Pose
	return []string{
		fmt.Sprintf("tick %d  gait %s  cannon %s", f.Tick, f.Gait, f.Cannon),
		fmt.Sprintf("hip %+.0f/%+.0f  knee %+.0f/%+.0f  ankle %+.0f/%+.0f",
			p[pose.HipLeft], p[pose.HipRight],
			p[pose.KneeLeft], p[pose.KneeRight],
			p[pose.AnkleLeft], p[pose.AnkleRight]),
		fmt.Sprintf("yaw %+.0f  shoulder %+.0f  gun %+.0f  spin %.0f",
			p[pose.BodyYaw], p[pose.Shoulder], p[pose.Gun], p[pose.CannonSpin]),
	}
}

// Play runs script on a without capturing anything.
func Play(script Script, a *anim.Animator) error {
	if err := script.Validate(); err != nil {
		return err
	}
	for _, st := range script {
		press(a, st.Key)
		for i := 0; i < st.Ticks; i++ {
			a.OnTick()
		}
	}
	return nil
}

func press(a *anim.Animator, key string) {
	if key == "" {
		return
	}
	k, _ := anim.ParseKey(key)
	a.OnKey(k)
}

// Simulate plays script on a and captures a frame before the first step and
// after every frameEvery-th tick. It runs on the caller's goroutine; the
// returned frames are independent copies.
func Simulate(script Script, a *anim.Animator, frameEvery int) ([]Frame, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	if frameEvery < 1 {
		frameEvery = 1
	}

	frames := make([]Frame, 0, script.TotalTicks()/frameEvery+1)
	capture := func() {
		frames = append(frames, Frame{
			Index:  len(frames),
			Tick:   a.Ticks(),
			Pose:   a.Pose(),
			Gait:   a.Gait(),
			Cannon: a.Cannon(),
		})
	}

	capture()
	for _, st := range script {
		press(a, st.Key)
		for i := 0; i < st.Ticks; i++ {
			a.OnTick()
			if a.Ticks()%uint64(frameEvery) == 0 {
				capture()
			}
		}
	}
	return frames, nil
}
