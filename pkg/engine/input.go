package engine

import (
	"fmt"
	"strings"
)

// InputSet is the set of actions held during one tick.
type InputSet uint8

// Actions map one-to-one onto a ship operation.
const (
	ActionForward InputSet = 1 << iota
	ActionRotateClockwise
	ActionRotateCounterClockwise
	ActionFire
)

// NoInput is the empty action set.
const NoInput InputSet = 0

var actionNames = []struct {
	action  InputSet
	name    string
	aliases []string
}{
	{ActionForward, "forward", []string{"up", "thrust"}},
	{ActionRotateClockwise, "clockwise", []string{"right", "cw"}},
	{ActionRotateCounterClockwise, "counterclockwise", []string{"left", "ccw"}},
	{ActionFire, "fire", []string{"space", "shoot"}},
}

// Has reports whether every action in a is held.
func (s InputSet) Has(a InputSet) bool {
	return a != 0 && s&a == a
}

func (s InputSet) String() string {
	if s == NoInput {
		return "none"
	}
	var names []string
	for _, n := range actionNames {
		if s.Has(n.action) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseActions parses a comma separated list such as "forward,fire".
// Blank input and "none" parse to NoInput.
func ParseActions(list string) (InputSet, error) {
	var set InputSet
	for _, field := range strings.Split(list, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" || field == "none" {
			continue
		}
		action, ok := lookupAction(field)
		if !ok {
			return NoInput, fmt.Errorf("unknown action %q", field)
		}
		set |= action
	}
	return set, nil
}

func lookupAction(name string) (InputSet, bool) {
	for _, n := range actionNames {
		if n.name == name {
			return n.action, true
		}
		for _, alias := range n.aliases {
			if alias == name {
				return n.action, true
			}
		}
	}
	return NoInput, false
}
