package types

// ------------------------
// Operating mode (retained on crossing/mode)
// ------------------------

// Mode is the operating regime. Only one regime's tasks run at a time.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeNight
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeNight:
		return "night"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeNight {
		return ModeNormal
	}
	return ModeNight
}

type ModeState struct {
	Mode        Mode   `json:"mode"`
	Transitions uint32 `json:"transitions"` // completed switches since boot
	TSms        int64  `json:"ts_ms"`
}

// ------------------------
// Cycle phases
// ------------------------

// Phase labels a step of a task program. Phases are per task, never shared.
type Phase uint8

const (
	PhaseGreen Phase = iota
	PhaseYellow
	PhaseRed
	PhaseSettle
	PhaseBlinkOn
	PhaseBlinkOff
)

func (p Phase) String() string {
	switch p {
	case PhaseGreen:
		return "green"
	case PhaseYellow:
		return "yellow"
	case PhaseRed:
		return "red"
	case PhaseSettle:
		return "settle"
	case PhaseBlinkOn:
		return "blink_on"
	case PhaseBlinkOff:
		return "blink_off"
	default:
		return "unknown"
	}
}

// ------------------------
// Task lifecycle (retained on crossing/task/<name>/state)
// ------------------------

type TaskRun string

const (
	TaskParked  TaskRun = "parked"
	TaskRunning TaskRun = "running"
)

type TaskState struct {
	Task  string  `json:"task"`
	Set   Mode    `json:"set"` // the regime the task belongs to
	State TaskRun `json:"state"`
	Step  int     `json:"step"` // program counter at the time of the change
	TSms  int64   `json:"ts_ms"`
}
