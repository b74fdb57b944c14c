// Package sequence drives the animator through a scripted run of key presses
// and ticks, then renders the captured poses to numbered image frames.
package sequence

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"robot-rig/internal/anim"
)

// Step presses Key (if any) and then runs Ticks animator ticks.
type Step struct {
	Key   string `json:"key,omitempty" yaml:"key,omitempty"`
	Ticks int    `json:"ticks" yaml:"ticks"`
}

// Script is an ordered list of steps.
type Script []Step

// DefaultScript walks two full strides, spins the cannon up while turning
// the torso, then stops both.
func DefaultScript() Script {
	return Script{
		{Key: "w", Ticks: 60},
		{Key: "c", Ticks: 30},
		{Key: "r", Ticks: 10},
		{Key: "r", Ticks: 10},
		{Key: "g", Ticks: 10},
		{Key: "s", Ticks: 20},
		{Key: "C", Ticks: 10},
		{Key: "w", Ticks: 10},
	}
}

// Validate checks every key parses and no step runs backwards.
func (s Script) Validate() error {
	for i, st := range s {
		if st.Ticks < 0 {
			return errors.Errorf("sequence: step %d: negative ticks %d", i, st.Ticks)
		}
		if st.Key == "" {
			continue
		}
		if _, err := anim.ParseKey(st.Key); err != nil {
			return errors.Wrapf(err, "sequence: step %d", i)
		}
	}
	return nil
}

// TotalTicks returns the number of ticks the script runs.
func (s Script) TotalTicks() int {
	n := 0
	for _, st := range s {
		n += st.Ticks
	}
	return n
}

// ParseScript reads the compact command-line form: comma separated
// "key:ticks" pairs, where key may be empty ("w:16,c:73,:10"). A bare key
// runs no ticks.
func ParseScript(s string) (Script, error) {
	var script Script
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		st := Step{Key: item}
		if i := strings.LastIndex(item, ":"); i >= 0 && i < len(item)-1 {
			n, err := strconv.Atoi(item[i+1:])
			if err != nil {
				return nil, errors.Wrapf(err, "sequence: bad step %q", item)
			}
			st = Step{Key: item[:i], Ticks: n}
		}
		script = append(script, st)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}
