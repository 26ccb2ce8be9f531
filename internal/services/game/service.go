package game

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/tenzies/internal/audio"
	"github.com/KirkDiggler/tenzies/internal/models"
	"github.com/KirkDiggler/tenzies/internal/services/animation"
	"github.com/KirkDiggler/tenzies/internal/services/messaging"
	"github.com/KirkDiggler/tenzies/internal/services/round"
)

// service implements the Service interface
type service struct {
	roundService     round.Service
	animationService animation.Service
	messagingService messaging.Service
	presenter        Presenter
	audioPlayer      audio.Player
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoundService == nil {
		return nil, ErrNilRoundService
	}
	if cfg.AnimationService == nil {
		return nil, ErrNilAnimationService
	}
	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}
	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}

	player := cfg.AudioPlayer
	if player == nil {
		player = audio.Silent{}
	}

	return &service{
		roundService:     cfg.RoundService,
		animationService: cfg.AnimationService,
		messagingService: cfg.MessagingService,
		presenter:        cfg.Presenter,
		audioPlayer:      player,
	}, nil
}

// Roll animates and commits a roll of every unheld die
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	// the outcome is drawn after the caller has returned
	done := context.WithoutCancel(ctx)

	output, err := s.animationService.Play(ctx, &animation.PlayInput{
		OnFrame: func(frame animation.Frame) {
			if frame.Step == 0 {
				s.playCue(audio.CueRoll)
			}
			s.presenter.Render(frame.Values, frame.Held)
		},
		OnComplete: func(result *animation.Result) {
			s.finishRoll(done, result)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to play roll: %w", err)
	}

	if !output.Status.Accepted() {
		message, err := s.reject(ctx, output.Status)
		if err != nil {
			return nil, err
		}
		return &RollOutput{Status: output.Status, Message: message}, nil
	}

	return &RollOutput{Status: models.StatusOK}, nil
}

// ToggleHold holds or releases one die
func (s *service) ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output, err := s.roundService.ToggleHold(ctx, &round.ToggleHoldInput{Index: input.Index})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle hold: %w", err)
	}

	if !output.Status.Accepted() {
		message, err := s.reject(ctx, output.Status)
		if err != nil {
			return nil, err
		}
		return &ToggleHoldOutput{Status: output.Status, Held: output.Held, Message: message}, nil
	}

	s.presenter.Render(output.Round.Dice.Values(), output.Round.Dice.HeldFlags())

	return &ToggleHoldOutput{
		Status: output.Status,
		Held:   output.Held,
	}, nil
}

// Reset starts a new game, keeping the best score
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output, err := s.roundService.Reset(ctx, &round.ResetInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to reset round: %w", err)
	}
	log.Printf("Round %s started", output.Round.ID)

	if err := s.draw(ctx, &output.Round, models.OutcomeInProgress, false); err != nil {
		return nil, err
	}

	return &ResetOutput{
		Round:     output.Round,
		BestScore: output.BestScore,
	}, nil
}

// Refresh pushes the whole current state to the presenter
func (s *service) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	current, err := s.roundService.GetRound(ctx, &round.GetRoundInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	outcome := models.OutcomeInProgress
	if current.Round.GameStarted {
		evaluated, err := s.roundService.Evaluate(ctx, &round.EvaluateInput{})
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate round: %w", err)
		}
		outcome = evaluated.Outcome
	}

	if err := s.draw(ctx, &current.Round, outcome, false); err != nil {
		return nil, err
	}

	return &RefreshOutput{
		Round:     current.Round,
		Outcome:   outcome,
		BestScore: current.BestScore,
	}, nil
}

// finishRoll runs once the animation has committed the roll
func (s *service) finishRoll(ctx context.Context, result *animation.Result) {
	if err := s.draw(ctx, &result.Round, result.Outcome, result.NewBest); err != nil {
		log.Printf("Failed to draw roll result: %v", err)
	}

	switch result.Outcome {
	case models.OutcomeWon:
		log.Printf("Round %s won in %d rolls", result.Round.ID, result.Round.RollCount)
		s.playCue(audio.CueWin)
	case models.OutcomeExhausted:
		log.Printf("Round %s lost after %d rolls", result.Round.ID, result.Round.RollCount)
		s.playCue(audio.CueLose)
	}
}

// draw renders a committed round with its status line and actions
func (s *service) draw(ctx context.Context, r *models.Round, outcome models.Outcome, newBest bool) error {
	status, err := s.messagingService.GetStatusMessage(ctx, &messaging.GetStatusMessageInput{
		Started:   r.GameStarted,
		Outcome:   outcome,
		RollCount: r.RollCount,
		MaxRolls:  r.MaxRolls,
		NewBest:   newBest,
	})
	if err != nil {
		return fmt.Errorf("failed to get status message: %w", err)
	}

	s.presenter.Render(r.Dice.Values(), r.Dice.HeldFlags())
	s.presenter.ShowStatus(status.Message)
	s.presenter.SetRollActionVisible(!outcome.IsOver())
	s.presenter.SetResetActionVisible(r.GameStarted || outcome.IsOver())
	return nil
}

func (s *service) reject(ctx context.Context, status models.Status) (string, error) {
	output, err := s.messagingService.GetRejectionMessage(ctx, &messaging.GetRejectionMessageInput{
		Status: status,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get rejection message: %w", err)
	}
	s.presenter.ShowStatus(output.Message)
	return output.Message, nil
}

// playCue is fire-and-forget; sound problems never interrupt the game
func (s *service) playCue(cue audio.Cue) {
	if err := s.audioPlayer.Play(cue); err != nil {
		log.Printf("Failed to play %s sound: %v", cue, err)
	}
}
