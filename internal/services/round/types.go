package round

import (
	"github.com/KirkDiggler/tenzies/internal/common/uuid"
	"github.com/KirkDiggler/tenzies/internal/dice"
	"github.com/KirkDiggler/tenzies/internal/models"
)

// DefaultMaxRolls is the number of commits allowed per round
const DefaultMaxRolls = 10

// Config holds configuration for the round engine
type Config struct {
	// Maximum number of commits per round, DefaultMaxRolls when zero
	MaxRolls int

	// Service dependencies
	DiceRoller    dice.Roller
	UUIDGenerator uuid.UUID
}

// GetRoundInput contains parameters for reading the round
type GetRoundInput struct{}

// GetRoundOutput contains a copy of the round state
type GetRoundOutput struct {
	Round models.Round

	// BestScore is the fewest rolls of any win so far, nil before the first win
	BestScore *int
}

// ToggleHoldInput contains parameters for holding or releasing a die
type ToggleHoldInput struct {
	// Index of the die, 0..9
	Index int
}

// ToggleHoldOutput contains the result of a hold toggle
type ToggleHoldOutput struct {
	Status models.Status

	// Held is the die's held flag after the call
	Held bool

	Round models.Round
}

// StartRollInput contains parameters for starting a roll
type StartRollInput struct{}

// StartRollOutput contains the result of starting a roll
type StartRollOutput struct {
	Status models.Status

	// Epoch identifies the round the roll belongs to
	Epoch uint64
}

// RollFrameInput contains parameters for drawing an animation frame
type RollFrameInput struct {
	// Epoch the animation started in; zero means the current round
	Epoch uint64
}

// RollFrameOutput contains one transient frame
type RollFrameOutput struct {
	Status models.Status

	// Values shows committed faces for held dice and fresh draws for the rest
	Values [models.DiceCount]int

	Held [models.DiceCount]bool
}

// CommitRollInput contains parameters for committing a roll
type CommitRollInput struct {
	// Epoch the roll started in; zero means the current round
	Epoch uint64
}

// CommitRollOutput contains the result of a commit
type CommitRollOutput struct {
	Status models.Status
	Round  models.Round
}

// EvaluateInput contains parameters for evaluating the round
type EvaluateInput struct{}

// EvaluateOutput contains the classification of the round
type EvaluateOutput struct {
	Outcome   models.Outcome
	RollCount int
	MaxRolls  int
	BestScore *int

	// NewBest is true when this evaluation lowered the best score
	NewBest bool
}

// ResetInput contains parameters for resetting the round
type ResetInput struct{}

// ResetOutput contains the fresh round
type ResetOutput struct {
	Round     models.Round
	BestScore *int
}
