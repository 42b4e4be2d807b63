package core

// RoundState is the session-level phase gating whether gameplay entities
// actively update. It is owned by the loop and handed to entities through
// the per-frame context.
type RoundState int

const (
	RoundNotStarted RoundState = iota // Waiting for the start trigger
	RoundRunning                      // Gameplay active
	RoundOver                         // Ball lost; waiting for restart
)

// String returns a human-readable name for the state.
func (s RoundState) String() string {
	switch s {
	case RoundNotStarted:
		return "NotStarted"
	case RoundRunning:
		return "Running"
	case RoundOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether the round state machine allows moving
// from s to next:
//
//	NotStarted --start--> Running --reach-bottom--> Over --restart--> NotStarted
func (s RoundState) CanTransition(next RoundState) bool {
	switch s {
	case RoundNotStarted:
		return next == RoundRunning
	case RoundRunning:
		return next == RoundOver
	case RoundOver:
		return next == RoundNotStarted
	}
	return false
}
