// Package game drives the simulation: the run-state machine, player intents,
// level setup, configuration and the terminal game loop.
package game

// RunState is the turn scheduler's state.
type RunState int

const (
	// Paused waits for a player intent. It is the initial state.
	Paused RunState = iota
	// Running runs the system pipeline once, then returns to Paused.
	Running
)

// String returns a human-readable state name.
func (s RunState) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Intent is one frame of player input.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentTeleport
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveUp:
		return "up"
	case IntentMoveDown:
		return "down"
	case IntentMoveLeft:
		return "left"
	case IntentMoveRight:
		return "right"
	case IntentTeleport:
		return "teleport"
	default:
		return "unknown"
	}
}

// Accepted reports whether the intent starts a turn.
func (i Intent) Accepted() bool {
	return i >= IntentMoveUp && i <= IntentTeleport
}

// Delta returns the movement offset of a directional intent, or (0, 0).
func (i Intent) Delta() (dx, dy int) {
	switch i {
	case IntentMoveUp:
		return 0, -1
	case IntentMoveDown:
		return 0, 1
	case IntentMoveLeft:
		return -1, 0
	case IntentMoveRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Effect is the work a transition asks the simulation to do.
type Effect int

const (
	// EffectNone does nothing.
	EffectNone Effect = iota
	// EffectApplyIntent applies the player's intent to the world.
	EffectApplyIntent
	// EffectRunSystems runs AI, indexing and visibility once.
	EffectRunSystems
)

// String returns a human-readable effect name.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectApplyIntent:
		return "apply_intent"
	case EffectRunSystems:
		return "run_systems"
	default:
		return "unknown"
	}
}

// Next is the scheduler's transition function. A Running state always runs
// the systems and pauses, whatever the intent.
func Next(state RunState, intent Intent) (RunState, Effect) {
	if state == Running {
		return Paused, EffectRunSystems
	}
	if intent.Accepted() {
		return Running, EffectApplyIntent
	}
	return Paused, EffectNone
}
