package anim

import "fmt"

// Key is a key event: a printable character as its rune, or one of the named
// special keys below.
type Key rune

const (
	KeyLeft Key = -(iota + 1)
	KeyRight
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	}
	if k > 0 {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey accepts a single character or a special key name ("left", "Up", ...).
func ParseKey(s string) (Key, error) {
	switch s {
	case "left", "Left", "LEFT":
		return KeyLeft, nil
	case "right", "Right", "RIGHT":
		return KeyRight, nil
	case "up", "Up", "UP":
		return KeyUp, nil
	case "down", "Down", "DOWN":
		return KeyDown, nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("anim: bad key %q", s)
	}
	return Key(r[0]), nil
}

// Command is a key-independent animator request.
type Command int

const (
	CmdNone Command = iota
	CmdToggleWalk
	CmdResetLegs
	CmdSpinStart
	CmdSpinStop
	CmdYawLeft
	CmdYawRight
	CmdShoulderUp
	CmdShoulderDown
	CmdElbowUp
	CmdElbowDown
	CmdNeckLeft
	CmdNeckRight
	CmdGunUp
	CmdGunDown
	CmdReset
)

// KeyMap binds keys to commands.
type KeyMap map[Key]Command

// DefaultKeyMap returns the classic bindings: w/W walk and reset legs, c/C
// cannon spin, r/R body yaw, s/S shoulder, e/E elbow, n/N neck, g/G gun,
// arrows for yaw and gun, 0 for a full reset.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		'w':      CmdToggleWalk,
		'W':      CmdResetLegs,
		'c':      CmdSpinStart,
		'C':      CmdSpinStop,
		'r':      CmdYawRight,
		'R':      CmdYawLeft,
		KeyRight: CmdYawRight,
		KeyLeft:  CmdYawLeft,
		's':      CmdShoulderUp,
		'S':      CmdShoulderDown,
		'e':      CmdElbowUp,
		'E':      CmdElbowDown,
		'n':      CmdNeckLeft,
		'N':      CmdNeckRight,
		'g':      CmdGunUp,
		'G':      CmdGunDown,
		KeyUp:    CmdGunUp,
		KeyDown:  CmdGunDown,
		'0':      CmdReset,
	}
}
