package animation

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/tenzies/internal/common/clock"
	"github.com/KirkDiggler/tenzies/internal/models"
	"github.com/KirkDiggler/tenzies/internal/services/round"
)

// service implements the Service interface
type service struct {
	steps        int
	delay        time.Duration
	roundService round.Service
	scheduler    clock.Scheduler

	mu     sync.Mutex
	active bool
	epoch  uint64

	// run identifies the current animation; steps from older runs do nothing
	run uint64
}

// New creates a new animation sequencer
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoundService == nil {
		return nil, ErrNilRoundService
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.Steps < 0 {
		return nil, ErrInvalidSteps
	}
	if cfg.Delay < 0 {
		return nil, ErrInvalidDelay
	}

	steps := cfg.Steps
	if steps == 0 {
		steps = DefaultSteps
	}
	delay := cfg.Delay
	if delay == 0 {
		delay = DefaultDelay
	}

	return &service{
		steps:        steps,
		delay:        delay,
		roundService: cfg.RoundService,
		scheduler:    cfg.Scheduler,
	}, nil
}

// Active reports whether an animation is running
func (s *service) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Play starts a roll animation. The first frame is shown before Play returns;
// the remaining frames and the commit run on the scheduler.
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	if s.active {
		abandoned, err := s.abandonedLocked(ctx)
		if err != nil {
			s.mu.Unlock()
			return nil, err
		}
		if !abandoned {
			epoch := s.epoch
			s.mu.Unlock()
			return &PlayOutput{Status: models.StatusAnimating, Epoch: epoch}, nil
		}
		log.Printf("Animation for epoch %d abandoned after reset", s.epoch)
		s.active = false
	}

	start, err := s.roundService.StartRoll(ctx, &round.StartRollInput{})
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to start roll: %w", err)
	}
	if !start.Status.Accepted() {
		s.mu.Unlock()
		return &PlayOutput{Status: start.Status, Epoch: start.Epoch}, nil
	}

	s.active = true
	s.epoch = start.Epoch
	s.run++
	run := s.run
	s.mu.Unlock()

	// steps outlive the caller's request
	s.step(context.WithoutCancel(ctx), input, run, start.Epoch, 0)

	return &PlayOutput{Status: models.StatusOK, Epoch: start.Epoch}, nil
}

// abandonedLocked reports whether the round under the running animation has
// been reset. Callers hold s.mu.
func (s *service) abandonedLocked(ctx context.Context) (bool, error) {
	current, err := s.roundService.GetRound(ctx, &round.GetRoundInput{})
	if err != nil {
		return false, fmt.Errorf("failed to get round: %w", err)
	}
	return current.Round.Epoch != s.epoch, nil
}

func (s *service) current(run uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active && s.run == run
}

func (s *service) finish(run uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == run {
		s.active = false
	}
}

func (s *service) step(ctx context.Context, input *PlayInput, run, epoch uint64, step int) {
	if !s.current(run) {
		return
	}
	if step >= s.steps {
		s.commit(ctx, input, run, epoch)
		return
	}

	frame, err := s.roundService.RollFrame(ctx, &round.RollFrameInput{Epoch: epoch})
	if err != nil {
		log.Printf("Animation frame %d failed: %v", step, err)
		s.finish(run)
		return
	}
	if frame.Status == models.StatusStale {
		s.finish(run)
		return
	}

	if input.OnFrame != nil {
		input.OnFrame(Frame{
			Step:   step,
			Values: frame.Values,
			Held:   frame.Held,
		})
	}

	s.scheduler.After(s.delay, func() {
		s.step(ctx, input, run, epoch, step+1)
	})
}

func (s *service) commit(ctx context.Context, input *PlayInput, run, epoch uint64) {
	defer s.finish(run)

	committed, err := s.roundService.CommitRoll(ctx, &round.CommitRollInput{Epoch: epoch})
	if err != nil {
		log.Printf("Failed to commit roll: %v", err)
		return
	}
	if committed.Status == models.StatusStale {
		return
	}

	evaluated, err := s.roundService.Evaluate(ctx, &round.EvaluateInput{})
	if err != nil {
		log.Printf("Failed to evaluate round: %v", err)
		return
	}

	// the sequencer is idle again before the caller sees the result
	s.finish(run)

	if input.OnComplete != nil {
		input.OnComplete(&Result{
			Status:    committed.Status,
			Outcome:   evaluated.Outcome,
			Round:     committed.Round,
			BestScore: evaluated.BestScore,
			NewBest:   evaluated.NewBest,
		})
	}
}
