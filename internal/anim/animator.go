// Package anim owns the robot's pose and advances it on timer ticks and key
// commands: an alternating walking gait and a spinning cannon.
package anim

import (
	"time"

	"robot-rig/internal/pose"
)

// Settings holds the per-tick and per-command increments in degrees.
type Settings struct {
	HipStep    float64       `json:"hip_step" yaml:"hip_step"`
	KneeStep   float64       `json:"knee_step" yaml:"knee_step"`
	AnkleStep  float64       `json:"ankle_step" yaml:"ankle_step"`
	SpinStep   float64       `json:"spin_step" yaml:"spin_step"`
	ManualStep float64       `json:"manual_step" yaml:"manual_step"`
	Tick       time.Duration `json:"tick" yaml:"tick"`
}

// DefaultSettings returns the tuned gait: 2° of hip per tick, a 10ms tick.
func DefaultSettings() Settings {
	return Settings{
		HipStep:    2,
		KneeStep:   1,
		AnkleStep:  1,
		SpinStep:   5,
		ManualStep: 5,
		Tick:       10 * time.Millisecond,
	}
}

// Merge returns s with every non-zero field of o applied on top.
func (s Settings) Merge(o Settings) Settings {
	if o.HipStep != 0 {
		s.HipStep = o.HipStep
	}
	if o.KneeStep != 0 {
		s.KneeStep = o.KneeStep
	}
	if o.AnkleStep != 0 {
		s.AnkleStep = o.AnkleStep
	}
	if o.SpinStep != 0 {
		s.SpinStep = o.SpinStep
	}
	if o.ManualStep != 0 {
		s.ManualStep = o.ManualStep
	}
	if o.Tick != 0 {
		s.Tick = o.Tick
	}
	return s
}

// Animator is the joint animation state machine. It is not safe for
// concurrent use: the owning event loop serialises OnKey and OnTick.
type Animator struct {
	settings Settings
	limits   pose.Limits
	keys     KeyMap
	bus      *EventBus

	pose   pose.Pose
	gait   State
	cannon State
	ticks  uint64
}

// New returns an animator at the rest pose with both regions Idle.
func New(settings Settings, limits pose.Limits) *Animator {
	return &Animator{
		settings: settings,
		limits:   limits,
		keys:     DefaultKeyMap(),
		bus:      NewEventBus(),
		pose:     limits.Initial(),
	}
}

// Events returns the bus animator events are emitted on.
func (a *Animator) Events() *EventBus { return a.bus }

// SetKeyMap replaces the key bindings.
func (a *Animator) SetKeyMap(km KeyMap) { a.keys = km }

// Pose returns a snapshot of the current joint angles.
func (a *Animator) Pose() pose.Pose { return a.pose }

// Gait returns the state of the walking region.
func (a *Animator) Gait() State { return a.gait }

// Cannon returns the state of the cannon region.
func (a *Animator) Cannon() State { return a.cannon }

// Ticks returns the number of OnTick calls so far.
func (a *Animator) Ticks() uint64 { return a.ticks }

// Settings returns the increments in use.
func (a *Animator) Settings() Settings { return a.settings }

// OnKey dispatches a key through the key map. Unbound keys are ignored and
// reported as false.
func (a *Animator) OnKey(k Key) bool {
	cmd, ok := a.keys[k]
	if !ok {
		return false
	}
	a.Apply(cmd)
	return true
}

// Apply executes one command.
func (a *Animator) Apply(cmd Command) {
	step := a.settings.ManualStep
	switch cmd {
	case CmdToggleWalk:
		if a.gait.Walking() {
			// Angles stay mid-stride.
			a.gait = Idle
			a.emit(EventWalkStop, Idle)
		} else {
			a.gait = WalkingForward
			a.emit(EventWalkStart, WalkingForward)
		}
	case CmdResetLegs:
		for _, j := range legJoints {
			a.pose[j] = a.limits[j].Limit(a.limits[j].Initial)
		}
		if a.gait.Walking() {
			a.gait = Idle
			a.emit(EventWalkStop, Idle)
		}
	case CmdSpinStart:
		if a.cannon != CannonSpinning {
			a.cannon = CannonSpinning
			a.emit(EventSpinStart, CannonSpinning)
		}
	case CmdSpinStop:
		a.pose[pose.CannonSpin] = a.limits[pose.CannonSpin].Limit(a.limits[pose.CannonSpin].Initial)
		if a.cannon == CannonSpinning {
			a.cannon = Idle
			a.emit(EventSpinStop, Idle)
		}
	case CmdYawLeft:
		a.nudge(pose.BodyYaw, -step)
	case CmdYawRight:
		a.nudge(pose.BodyYaw, step)
	case CmdShoulderUp:
		a.nudge(pose.Shoulder, -step)
	case CmdShoulderDown:
		a.nudge(pose.Shoulder, step)
	case CmdElbowUp:
		a.nudge(pose.Elbow, -step)
	case CmdElbowDown:
		a.nudge(pose.Elbow, step)
	case CmdNeckLeft:
		a.nudge(pose.Neck, step)
	case CmdNeckRight:
		a.nudge(pose.Neck, -step)
	case CmdGunUp:
		a.nudge(pose.Gun, -step)
	case CmdGunDown:
		a.nudge(pose.Gun, step)
	case CmdReset:
		walking, spinning := a.gait.Walking(), a.cannon == CannonSpinning
		a.pose = a.limits.Initial()
		a.gait, a.cannon = Idle, Idle
		if walking {
			a.emit(EventWalkStop, Idle)
		}
		if spinning {
			a.emit(EventSpinStop, Idle)
		}
	}
}

// OnTick advances every active region by one step. Idle regions do no work,
// so a stop request costs at most one no-op tick.
func (a *Animator) OnTick() {
	a.ticks++

	switch a.gait {
	case WalkingForward:
		if a.pose[pose.HipLeft] >= a.limits[pose.HipLeft].Max {
			a.gait = WalkingBackward
			a.emit(EventStep, WalkingBackward)
			break
		}
		a.stride(1)
	case WalkingBackward:
		if a.pose[pose.HipLeft] <= a.limits[pose.HipLeft].Min {
			a.gait = WalkingForward
			a.emit(EventStep, WalkingForward)
			break
		}
		a.stride(-1)
	}

	if a.cannon == CannonSpinning {
		a.nudge(pose.CannonSpin, a.settings.SpinStep)
	}
}

var legJoints = []pose.JointID{
	pose.HipLeft, pose.HipRight,
	pose.KneeLeft, pose.KneeRight,
	pose.AnkleLeft, pose.AnkleRight,
}

// stride moves the legs one step; dir 1 swings the left leg forward and the
// right leg back, dir -1 the reverse. Increments are always opposite in sign
// between the legs.
func (a *Animator) stride(dir float64) {
	s := a.settings
	a.nudge(pose.HipLeft, dir*s.HipStep)
	a.nudge(pose.KneeLeft, -dir*s.KneeStep)
	a.nudge(pose.AnkleLeft, dir*s.AnkleStep)

	a.nudge(pose.HipRight, -dir*s.HipStep)
	a.nudge(pose.KneeRight, dir*s.KneeStep)
	a.nudge(pose.AnkleRight, -dir*s.AnkleStep)
}

func (a *Animator) nudge(j pose.JointID, delta float64) {
	a.pose[j] = a.limits[j].Limit(a.pose[j] + delta)
}

func (a *Animator) emit(t EventType, s State) {
	a.bus.Emit(Event{Type: t, State: s, Tick: a.ticks, Pose: a.pose})
}
