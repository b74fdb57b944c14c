package anim

// State is one state of the animation state machine. The gait region uses
// Idle, WalkingForward and WalkingBackward; the cannon region uses Idle and
// CannonSpinning.
type State int

const (
	Idle State = iota
	WalkingForward
	WalkingBackward
	CannonSpinning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case WalkingForward:
		return "WalkingForward"
	case WalkingBackward:
		return "WalkingBackward"
	case CannonSpinning:
		return "CannonSpinning"
	}
	return "Unknown"
}

// Walking reports whether s is one of the gait phases.
func (s State) Walking() bool {
	return s == WalkingForward || s == WalkingBackward
}
