package anim

import (
	"math"
	"testing"
	"time"

	"go.viam.com/test"

	"robot-rig/internal/pose"
)

func newTestAnimator() *Animator {
	return New(DefaultSettings(), pose.DefaultLimits())
}

func ticks(a *Animator, n int) {
	for i := 0; i < n; i++ {
		a.OnTick()
	}
}

func TestWalkSixteenTicks(t *testing.T) {
	a := newTestAnimator()
	test.That(t, a.Gait(), test.ShouldEqual, Idle)

	test.That(t, a.OnKey('w'), test.ShouldBeTrue)
	test.That(t, a.Gait(), test.ShouldEqual, WalkingForward)

	ticks(a, 15)
	p := a.Pose()
	test.That(t, p[pose.HipLeft], test.ShouldEqual, 30.0)
	test.That(t, p[pose.HipRight], test.ShouldEqual, -30.0)
	test.That(t, a.Gait(), test.ShouldEqual, WalkingForward)

	// The 16th tick sees the bound and only flips.
	a.OnTick()
	test.That(t, a.Gait(), test.ShouldEqual, WalkingBackward)
	test.That(t, a.Pose(), test.ShouldResemble, p)

	a.OnTick()
	test.That(t, a.Pose()[pose.HipLeft], test.ShouldEqual, 28.0)
}

func TestWalkForwardMonotone(t *testing.T) {
	a := newTestAnimator()
	a.Apply(CmdToggleWalk)

	prev := a.Pose()
	for i := 0; i < 200; i++ {
		state := a.Gait()
		a.OnTick()
		cur := a.Pose()
		if state == WalkingForward && a.Gait() == WalkingForward {
			test.That(t, cur[pose.HipLeft], test.ShouldBeGreaterThanOrEqualTo, prev[pose.HipLeft])
			test.That(t, cur[pose.HipRight], test.ShouldBeLessThanOrEqualTo, prev[pose.HipRight])
		}
		if state == WalkingBackward && a.Gait() == WalkingBackward {
			test.That(t, cur[pose.HipLeft], test.ShouldBeLessThanOrEqualTo, prev[pose.HipLeft])
			test.That(t, cur[pose.HipRight], test.ShouldBeGreaterThanOrEqualTo, prev[pose.HipRight])
		}
		prev = cur
	}
}

func TestJointsStayInRange(t *testing.T) {
	limits := pose.DefaultLimits()
	a := New(Settings{HipStep: 7, KneeStep: 4, AnkleStep: 3, SpinStep: 13, ManualStep: 11}, limits)
	a.Apply(CmdToggleWalk)
	a.Apply(CmdSpinStart)

	keys := []Key{'r', 's', 'e', 'n', 'g', KeyUp, 'R', 'S', 'E', 'N', 'G', KeyDown}
	for i := 0; i < 1000; i++ {
		a.OnTick()
		if i%3 == 0 {
			a.OnKey(keys[(i/3)%len(keys)])
		}
		for j, v := range a.Pose() {
			s := limits[j]
			test.That(t, v, test.ShouldBeGreaterThanOrEqualTo, s.Min)
			if s.Wrap {
				test.That(t, v, test.ShouldBeLessThan, s.Max)
			} else {
				test.That(t, v, test.ShouldBeLessThanOrEqualTo, s.Max)
			}
		}
	}
}

func TestSpinModulo(t *testing.T) {
	for _, n := range []int{0, 1, 71, 72, 73, 144, 1000} {
		a := newTestAnimator()
		a.OnKey('c')
		ticks(a, n)
		want := math.Mod(5*float64(n), 360)
		test.That(t, a.Pose()[pose.CannonSpin], test.ShouldAlmostEqual, want)
	}

	a := newTestAnimator()
	a.OnKey('c')
	ticks(a, 73)
	test.That(t, a.Pose()[pose.CannonSpin], test.ShouldEqual, 5.0)
	test.That(t, a.Cannon(), test.ShouldEqual, CannonSpinning)
}

func TestRegionsIndependent(t *testing.T) {
	a := newTestAnimator()
	a.OnKey('w')
	a.OnKey('c')
	ticks(a, 4)
	test.That(t, a.Gait(), test.ShouldEqual, WalkingForward)
	test.That(t, a.Cannon(), test.ShouldEqual, CannonSpinning)

	a.OnKey('C')
	test.That(t, a.Cannon(), test.ShouldEqual, Idle)
	test.That(t, a.Gait(), test.ShouldEqual, WalkingForward)
	test.That(t, a.Pose()[pose.CannonSpin], test.ShouldEqual, 0.0)

	ticks(a, 2)
	test.That(t, a.Pose()[pose.HipLeft], test.ShouldEqual, 12.0)
	test.That(t, a.Pose()[pose.CannonSpin], test.ShouldEqual, 0.0)
}

func TestStopLeavesMidStride(t *testing.T) {
	a := newTestAnimator()
	a.OnKey('w')
	ticks(a, 5)
	a.OnKey('w')
	test.That(t, a.Gait(), test.ShouldEqual, Idle)

	p := a.Pose()
	test.That(t, p[pose.HipLeft], test.ShouldEqual, 10.0)
	ticks(a, 10)
	test.That(t, a.Pose(), test.ShouldResemble, p)

	// Resuming starts forward again from where it stopped.
	a.OnKey('w')
	a.OnTick()
	test.That(t, a.Pose()[pose.HipLeft], test.ShouldEqual, 12.0)
}

func TestResetLegs(t *testing.T) {
	a := newTestAnimator()
	a.OnKey('w')
	a.OnKey('s')
	ticks(a, 7)
	a.OnKey('W')

	p := a.Pose()
	test.That(t, a.Gait(), test.ShouldEqual, Idle)
	for _, j := range legJoints {
		test.That(t, p[j], test.ShouldEqual, 0.0)
	}
	test.That(t, p[pose.Shoulder], test.ShouldEqual, -5.0)
}

func TestFullReset(t *testing.T) {
	a := newTestAnimator()
	a.OnKey('w')
	a.OnKey('c')
	a.OnKey('r')
	a.OnKey('g')
	ticks(a, 9)
	a.OnKey('0')

	test.That(t, a.Pose(), test.ShouldResemble, pose.DefaultLimits().Initial())
	test.That(t, a.Gait(), test.ShouldEqual, Idle)
	test.That(t, a.Cannon(), test.ShouldEqual, Idle)
}

func TestManualJoints(t *testing.T) {
	for _, tc := range []struct {
		key   Key
		joint pose.JointID
		want  float64
	}{
		{'r', pose.BodyYaw, 5},
		{'R', pose.BodyYaw, -5},
		{KeyRight, pose.BodyYaw, 5},
		{KeyLeft, pose.BodyYaw, -5},
		{'s', pose.Shoulder, -5},
		{'S', pose.Shoulder, 5},
		{'e', pose.Elbow, -5},
		{'E', pose.Elbow, 0},
		{'n', pose.Neck, 5},
		{'N', pose.Neck, -5},
		{'g', pose.Gun, -5},
		{'G', pose.Gun, 5},
		{KeyUp, pose.Gun, -5},
		{KeyDown, pose.Gun, 5},
	} {
		t.Run(tc.key.String(), func(t *testing.T) {
			a := newTestAnimator()
			test.That(t, a.OnKey(tc.key), test.ShouldBeTrue)
			test.That(t, a.Pose()[tc.joint], test.ShouldEqual, tc.want)
		})
	}

	t.Run("yaw saturates", func(t *testing.T) {
		a := newTestAnimator()
		for i := 0; i < 100; i++ {
			a.OnKey('r')
		}
		test.That(t, a.Pose()[pose.BodyYaw], test.ShouldEqual, 180.0)
	})
}

func TestUnknownKeyIgnored(t *testing.T) {
	a := newTestAnimator()
	before := a.Pose()
	test.That(t, a.OnKey('x'), test.ShouldBeFalse)
	test.That(t, a.OnKey(Key(-99)), test.ShouldBeFalse)
	test.That(t, a.Pose(), test.ShouldResemble, before)
	test.That(t, a.Gait(), test.ShouldEqual, Idle)
}

func TestEvents(t *testing.T) {
	a := newTestAnimator()
	var got []EventType
	var steps []Event
	for _, et := range []EventType{EventStep, EventWalkStart, EventWalkStop, EventSpinStart, EventSpinStop} {
		a.Events().Subscribe(et, func(e Event) { got = append(got, e.Type) })
	}
	a.Events().Subscribe(EventStep, func(e Event) { steps = append(steps, e) })

	a.OnKey('w')
	a.OnKey('c')
	a.OnKey('c')
	ticks(a, 16)
	a.OnKey('C')
	a.OnKey('w')

	test.That(t, got, test.ShouldResemble, []EventType{
		EventWalkStart, EventSpinStart, EventStep, EventSpinStop, EventWalkStop,
	})
	test.That(t, steps, test.ShouldHaveLength, 1)
	test.That(t, steps[0].Tick, test.ShouldEqual, uint64(16))
	test.That(t, steps[0].State, test.ShouldEqual, WalkingBackward)
}

func TestSettingsMerge(t *testing.T) {
	s := DefaultSettings().Merge(Settings{HipStep: 3, Tick: 20 * time.Millisecond})
	test.That(t, s.HipStep, test.ShouldEqual, 3.0)
	test.That(t, s.KneeStep, test.ShouldEqual, 1.0)
	test.That(t, s.Tick, test.ShouldEqual, 20*time.Millisecond)
}

func TestParseKey(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Key
	}{
		{"w", 'w'}, {"0", '0'}, {"left", KeyLeft}, {"Up", KeyUp}, {"DOWN", KeyDown}, {"right", KeyRight},
	} {
		k, err := ParseKey(tc.in)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, k, test.ShouldEqual, tc.want)
	}
	_, err := ParseKey("ww")
	test.That(t, err, test.ShouldNotBeNil)
	_, err = ParseKey("")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestClock(t *testing.T) {
	c := NewClock(10 * time.Millisecond)
	test.That(t, c.Advance(5*time.Millisecond), test.ShouldEqual, 0)
	test.That(t, c.Advance(5*time.Millisecond), test.ShouldEqual, 1)
	test.That(t, c.Advance(25*time.Millisecond), test.ShouldEqual, 2)
	test.That(t, c.Advance(5*time.Millisecond), test.ShouldEqual, 1)
	test.That(t, c.Advance(-time.Second), test.ShouldEqual, 0)

	// A long stall is capped rather than replayed.
	test.That(t, c.Advance(time.Second), test.ShouldEqual, maxCatchUp)
	test.That(t, c.Advance(0), test.ShouldEqual, 0)

	test.That(t, NewClock(0).Interval(), test.ShouldEqual, DefaultSettings().Tick)
}
