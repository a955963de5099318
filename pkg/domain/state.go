package domain

import (
	"fmt"
	"strconv"
)

// State identifies an automaton state.
type State int

const (
	// Initial is the state every run starts in.
	Initial State = 0
	// Final is the terminal state; reaching it ends a generation.
	Final State = -1
)

// String returns a readable name for the state.
func (q State) String() string {
	switch q {
	case Initial:
		return "init"
	case Final:
		return "final"
	default:
		return "q" + strconv.Itoa(int(q))
	}
}

// IsTerminal reports whether q is the Final sentinel.
func (q State) IsTerminal() bool {
	return q == Final
}

// Action is the stack operation performed by a transition before the
// optional push.
type Action int

const (
	// Noop leaves the stack untouched.
	Noop Action = iota
	// Pop removes the top of the stack.
	Pop
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Noop:
		return "noop"
	case Pop:
		return "pop"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	switch a {
	case Noop, Pop:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("unknown action %d", int(a))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	switch string(text) {
	case "noop", "":
		*a = Noop
	case "pop":
		*a = Pop
	default:
		return fmt.Errorf("unknown action %q", string(text))
	}
	return nil
}
