package round

import (
	"context"
	"log"
	"sync"

	"github.com/KirkDiggler/tenzies/internal/common/uuid"
	"github.com/KirkDiggler/tenzies/internal/dice"
	"github.com/KirkDiggler/tenzies/internal/models"
)

// service implements the Service interface
type service struct {
	mu            sync.Mutex
	maxRolls      int
	diceRoller    dice.Roller
	uuidGenerator uuid.UUID

	round models.Round

	// bestScore outlives rounds; it is lost when the process exits
	bestScore *int
}

// New creates a round engine and deals the first round
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.MaxRolls < 0 {
		return nil, ErrInvalidMaxRolls
	}

	maxRolls := cfg.MaxRolls
	if maxRolls == 0 {
		maxRolls = DefaultMaxRolls
	}

	s := &service{
		maxRolls:      maxRolls,
		diceRoller:    cfg.DiceRoller,
		uuidGenerator: cfg.UUIDGenerator,
	}
	s.deal()

	return s, nil
}

// GetRound returns a snapshot of the current round
func (s *service) GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetRoundOutput{
		Round:     s.round,
		BestScore: s.best(),
	}, nil
}

// ToggleHold flips the held flag of one die
func (s *service) ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Index < 0 || input.Index >= models.DiceCount {
		return nil, ErrInvalidDieIndex
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := models.StatusOK
	switch {
	case s.round.AnimationInProgress:
		status = models.StatusAnimating
	case !s.round.GameStarted:
		status = models.StatusNotStarted
	default:
		s.round.Dice[input.Index].Held = !s.round.Dice[input.Index].Held
	}

	return &ToggleHoldOutput{
		Status: status,
		Held:   s.round.Dice[input.Index].Held,
		Round:  s.round,
	}, nil
}

// StartRoll opens the animation window if a roll is allowed
func (s *service) StartRoll(ctx context.Context, input *StartRollInput) (*StartRollOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.rollStatus()
	if status.Accepted() {
		s.round.AnimationInProgress = true
	}

	return &StartRollOutput{
		Status: status,
		Epoch:  s.round.Epoch,
	}, nil
}

// RollFrame draws a transient display vector. Held dice show their committed
// value and unheld dice an independent fresh draw.
func (s *service) RollFrame(ctx context.Context, input *RollFrameInput) (*RollFrameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	output := &RollFrameOutput{
		Status: models.StatusOK,
		Held:   s.round.Dice.HeldFlags(),
	}
	if s.isStale(input.Epoch) {
		output.Status = models.StatusStale
		output.Values = s.round.Dice.Values()
		return output, nil
	}

	for i, die := range s.round.Dice {
		if die.Held {
			output.Values[i] = die.Value
			continue
		}
		output.Values[i] = s.diceRoller.Roll(dice.Sides)
	}

	return output, nil
}

// CommitRoll re-rolls every unheld die and counts the roll. A commit carrying
// the epoch of an open animation closes that window even when rejected; a
// rejected commit leaves the dice and the roll count untouched.
func (s *service) CommitRoll(ctx context.Context, input *CommitRollInput) (*CommitRollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStale(input.Epoch) {
		return &CommitRollOutput{
			Status: models.StatusStale,
			Round:  s.round,
		}, nil
	}

	if s.round.AnimationInProgress {
		// only the roll that opened the window may close it
		if input.Epoch == 0 {
			return &CommitRollOutput{
				Status: models.StatusAnimating,
				Round:  s.round,
			}, nil
		}
		s.round.AnimationInProgress = false
	}

	status := s.rollStatus()
	if !status.Accepted() {
		log.Printf("Round %s: commit rejected: %s", s.round.ID, status)
		return &CommitRollOutput{
			Status: status,
			Round:  s.round,
		}, nil
	}

	for i := range s.round.Dice {
		if s.round.Dice[i].Held {
			continue
		}
		s.round.Dice[i].Value = s.diceRoller.Roll(dice.Sides)
	}
	s.round.RollCount++
	s.round.GameStarted = true

	return &CommitRollOutput{
		Status: models.StatusOK,
		Round:  s.round,
	}, nil
}

// Evaluate classifies the round and records a new best score on a win
func (s *service) Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	output := &EvaluateOutput{
		Outcome:   s.outcome(),
		RollCount: s.round.RollCount,
		MaxRolls:  s.round.MaxRolls,
	}

	if output.Outcome == models.OutcomeWon {
		if s.bestScore == nil || s.round.RollCount < *s.bestScore {
			best := s.round.RollCount
			s.bestScore = &best
			output.NewBest = true
			log.Printf("Round %s: new best score of %d rolls", s.round.ID, best)
		}
	}
	output.BestScore = s.best()

	return output, nil
}

// Reset starts a new round, keeping the best score
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deal()

	return &ResetOutput{
		Round:     s.round,
		BestScore: s.best(),
	}, nil
}

// deal replaces the round with ten fresh unheld dice. Callers hold s.mu
// except during construction.
func (s *service) deal() {
	var set models.DiceSet
	for i := range set {
		set[i] = models.Die{Value: s.diceRoller.Roll(dice.Sides)}
	}

	s.round = models.Round{
		ID:       s.uuidGenerator.NewUUID(),
		Epoch:    s.round.Epoch + 1,
		Dice:     set,
		MaxRolls: s.maxRolls,
	}
}

func (s *service) rollStatus() models.Status {
	switch {
	case s.round.AnimationInProgress:
		return models.StatusAnimating
	case s.round.Dice.AllEqual():
		return models.StatusAlreadyWon
	case s.round.RollsLeft() <= 0:
		return models.StatusNoRollsLeft
	default:
		return models.StatusOK
	}
}

func (s *service) outcome() models.Outcome {
	switch {
	case s.round.Dice.AllEqual():
		return models.OutcomeWon
	case s.round.RollsLeft() <= 0:
		return models.OutcomeExhausted
	default:
		return models.OutcomeInProgress
	}
}

func (s *service) isStale(epoch uint64) bool {
	return epoch != 0 && epoch != s.round.Epoch
}

func (s *service) best() *int {
	if s.bestScore == nil {
		return nil
	}
	best := *s.bestScore
	return &best
}
