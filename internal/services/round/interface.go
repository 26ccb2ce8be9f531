package round

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tenzies/internal/services/round Service

// Service defines the round engine operations
type Service interface {
	// GetRound returns a snapshot of the current round and the best score
	GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error)

	// ToggleHold flips the held flag of one die
	ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error)

	// StartRoll opens the animation window if a roll is allowed
	StartRoll(ctx context.Context, input *StartRollInput) (*StartRollOutput, error)

	// RollFrame draws a transient display vector without touching the round
	RollFrame(ctx context.Context, input *RollFrameInput) (*RollFrameOutput, error)

	// CommitRoll re-rolls every unheld die and counts the roll
	CommitRoll(ctx context.Context, input *CommitRollInput) (*CommitRollOutput, error)

	// Evaluate classifies the round and records a new best score on a win
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)

	// Reset starts a new round, keeping the best score
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}
