package models

// TargetState is the state the heater should be in.
type TargetState string

const (
	StateOn  TargetState = "ON"
	StateOff TargetState = "OFF"
)

// HeaterDecision is computed fresh on every evaluation and never stored.
type HeaterDecision struct {
	Building    string      `json:"building"`
	Room        string      `json:"room"`
	TargetState TargetState `json:"target_state"` // ON | OFF
}

// DegradedNotice tells a stream client that decisions are currently
// not being produced because the schedule store keeps failing.
type DegradedNotice struct {
	Building string `json:"building"`
	Room     string `json:"room"`
	Failures int    `json:"consecutive_failures"`
	Error    string `json:"error"`
}
