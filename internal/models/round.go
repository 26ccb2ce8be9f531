package models

// Outcome classifies a round after a commit
type Outcome string

const (
	// OutcomeInProgress means rolls remain and the dice do not all match
	OutcomeInProgress Outcome = "in_progress"

	// OutcomeWon means all ten dice show the same face
	OutcomeWon Outcome = "won"

	// OutcomeExhausted means every roll was used without a win
	OutcomeExhausted Outcome = "exhausted"
)

// IsOver reports whether no further rolls are accepted
func (o Outcome) IsOver() bool {
	return o == OutcomeWon || o == OutcomeExhausted
}

// Status is the result of an action against a round. Rejected actions are
// reported through Status rather than as errors.
type Status string

const (
	// StatusOK indicates the action was applied
	StatusOK Status = "ok"

	// StatusNotStarted indicates holds are not allowed before the first roll
	StatusNotStarted Status = "not_started"

	// StatusAnimating indicates a roll animation is still playing
	StatusAnimating Status = "animating"

	// StatusAlreadyWon indicates the round is already won
	StatusAlreadyWon Status = "already_won"

	// StatusNoRollsLeft indicates every roll has been used
	StatusNoRollsLeft Status = "no_rolls_left"

	// StatusStale indicates the action belongs to a round that was reset
	StatusStale Status = "stale"
)

// Accepted reports whether the action was applied
func (s Status) Accepted() bool {
	return s == StatusOK
}

// Round is the state of the current game of Tenzies
type Round struct {
	// ID is the unique identifier for the round
	ID string

	// Epoch increments on every reset so late animation steps can detect them
	Epoch uint64

	// Dice are the committed dice on the table
	Dice DiceSet

	// RollCount is the number of commits made this round
	RollCount int

	// MaxRolls is the number of commits allowed per round
	MaxRolls int

	// GameStarted becomes true once the first roll commits
	GameStarted bool

	// AnimationInProgress blocks holds and rolls while dice are rolling
	AnimationInProgress bool
}

// RollsLeft returns how many commits remain
func (r *Round) RollsLeft() int {
	return r.MaxRolls - r.RollCount
}
