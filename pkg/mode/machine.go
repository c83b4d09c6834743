package mode

// Action is what the owner of a Machine must do after a key.
type Action int

const (
	ActionNone Action = iota
	ActionPrevWeek
	ActionNextWeek
	ActionNextDay
	ActionPrevDay
	// ActionSubmit carries the buffer contents in Effect.Input. The machine is
	// already back in Normal with an empty buffer when it is returned.
	ActionSubmit
	ActionQuit
)

// Effect is the result of handling one key.
type Effect struct {
	Action Action
	Input  string
}

// Machine tracks the active mode and the input buffer.
type Machine struct {
	mode   Mode
	buffer []rune
}

// NewMachine starts in Normal with an empty buffer.
func NewMachine() *Machine {
	return &Machine{mode: Normal}
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Buffer returns the text typed so far.
func (m *Machine) Buffer() string {
	return string(m.buffer)
}

// Handle applies one key press and reports what the caller should do.
func (m *Machine) Handle(k Key) Effect {
	switch m.mode {
	case Normal:
		return m.handleNormal(k)
	case Insert, Command, Future:
		return m.handleBuffering(k)
	default:
		// Plan and Reflect have no bindings.
		return Effect{}
	}
}

func (m *Machine) handleNormal(k Key) Effect {
	if k.Code != KeyRune {
		return Effect{}
	}
	switch k.Rune {
	case 'm':
		m.mode = Command
		m.clear()
	case 'f':
		m.mode = Future
	case 'i':
		m.mode = Insert
	case 'h':
		return Effect{Action: ActionPrevWeek}
	case 'l':
		return Effect{Action: ActionNextWeek}
	case 'j':
		return Effect{Action: ActionNextDay}
	case 'k':
		return Effect{Action: ActionPrevDay}
	case 'q':
		return Effect{Action: ActionQuit}
	}
	return Effect{}
}

func (m *Machine) handleBuffering(k Key) Effect {
	switch k.Code {
	case KeyEscape:
		m.mode = Normal
		m.clear()
	case KeyBackspace:
		if n := len(m.buffer); n > 0 {
			m.buffer = m.buffer[:n-1]
		}
	case KeyEnter:
		input := m.Buffer()
		m.mode = Normal
		m.clear()
		return Effect{Action: ActionSubmit, Input: input}
	case KeyRune:
		if m.mode == Future && k.Rune == 'q' {
			return Effect{Action: ActionQuit}
		}
		m.buffer = append(m.buffer, k.Rune)
	}
	return Effect{}
}

func (m *Machine) clear() {
	m.buffer = m.buffer[:0]
}
