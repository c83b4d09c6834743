// Package mode implements the modal input model: which mode is active, what
// each key means in it, and the text typed so far.
package mode

// Mode is the exclusive interaction state.
type Mode int

const (
	Normal Mode = iota
	Insert
	Command
	// Plan and Reflect are reserved for carrying over unfinished tasks and for
	// mood logs. No key leads into them yet.
	Plan
	Reflect
	Future
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Insert:
		return "Insert"
	case Command:
		return "Command"
	case Plan:
		return "Plan"
	case Reflect:
		return "Reflect"
	case Future:
		return "Future"
	default:
		return "Unknown"
	}
}

// Buffering reports whether the mode accumulates typed text.
func (m Mode) Buffering() bool {
	switch m {
	case Insert, Command, Future:
		return true
	default:
		return false
	}
}
