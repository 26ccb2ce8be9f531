package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/tenzies/internal/models"
)

// service implements the Service interface
type service struct {
	defaultTone MessageTone

	// Random number generator for selecting message variants
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	tone := config.DefaultTone
	if tone == "" {
		tone = ToneNeutral
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		defaultTone: tone,
		rand:        rand.New(rand.NewSource(seed)),
	}, nil
}

// GetStatusMessage returns the status line for the current round
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := s.tone(input.PreferredTone)
	var message string

	switch {
	case !input.Started && input.RollCount == 0:
		message = s.pick(tone, map[MessageTone][]string{
			ToneNeutral: {"Roll the dice to start!"},
			ToneFunny: {
				"Ten dice, one face, zero excuses. Roll!",
				"The dice are bored. Roll them!",
				"Tenzies waits for no one. Roll the dice to start!",
			},
			ToneEncouraging: {
				"Roll the dice to start! You've got this.",
				"Ready when you are. Roll the dice to start!",
			},
		})

	case input.Outcome == models.OutcomeWon:
		message = fmt.Sprintf("Congratulations! You won in %d rolls.", input.RollCount)
		if tone != ToneNeutral {
			message = s.pick(tone, map[MessageTone][]string{
				ToneFunny: {
					fmt.Sprintf("TENZIES! %d rolls and not a single die out of line.", input.RollCount),
					fmt.Sprintf("Ten for ten in %d rolls. Somebody call the casino.", input.RollCount),
				},
				ToneEncouraging: {
					fmt.Sprintf("Congratulations! You won in %d rolls. Great focus!", input.RollCount),
				},
			})
		}
		if input.NewBest {
			message += fmt.Sprintf(" New best score: %d rolls!", input.RollCount)
		}

	case input.Outcome == models.OutcomeExhausted:
		message = s.pick(tone, map[MessageTone][]string{
			ToneNeutral: {"Game over! No more rolls left."},
			ToneFunny: {
				"Game over! No more rolls left. The dice have unionised.",
				"Game over! No more rolls left. Nine out of ten dice agree you lost.",
			},
			ToneEncouraging: {
				"Game over! No more rolls left. So close, go again!",
			},
		})

	default:
		message = fmt.Sprintf("Rolls: %d / %d", input.RollCount, input.MaxRolls)
		if tone != ToneNeutral {
			message += s.pick(tone, map[MessageTone][]string{
				ToneFunny: {
					" - keep the faith.",
					" - the dice can smell fear.",
					" - hold the majority, pray for the rest.",
				},
				ToneEncouraging: {
					" - nice, keep going!",
					" - you're getting there.",
				},
			})
		}
	}

	return &GetStatusMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetRejectionMessage returns a user-friendly message for a rejected action
func (s *service) GetRejectionMessage(ctx context.Context, input *GetRejectionMessageInput) (*GetRejectionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := s.tone(input.PreferredTone)
	var messages map[MessageTone][]string

	switch input.Status {
	case models.StatusNoRollsLeft:
		messages = map[MessageTone][]string{
			ToneNeutral: {"Game over! Reset to play again."},
			ToneFunny:   {"Game over! Reset to play again. Rolling harder won't help."},
		}
	case models.StatusAlreadyWon:
		messages = map[MessageTone][]string{
			ToneNeutral: {"You already won! Reset to play again."},
			ToneFunny:   {"You already won! Reset to play again. Greedy much?"},
		}
	case models.StatusNotStarted:
		messages = map[MessageTone][]string{
			ToneNeutral: {"Roll the dice first before holding any."},
			ToneFunny:   {"Nothing to hold yet. Roll first, hoard later."},
		}
	case models.StatusAnimating:
		messages = map[MessageTone][]string{
			ToneNeutral: {"Hold on, the dice are still rolling."},
			ToneFunny:   {"Easy there! The dice are still in the air."},
		}
	case models.StatusStale:
		messages = map[MessageTone][]string{
			ToneNeutral: {"That roll belonged to a previous game."},
		}
	default:
		return nil, fmt.Errorf("no rejection message for status %q", input.Status)
	}

	return &GetRejectionMessageOutput{
		Message: s.pick(tone, messages),
		Tone:    tone,
	}, nil
}

func (s *service) tone(preferred MessageTone) MessageTone {
	if preferred == "" {
		return s.defaultTone
	}
	return preferred
}

// pick selects a random variant for the tone, falling back to neutral
func (s *service) pick(tone MessageTone, variants map[MessageTone][]string) string {
	messages, ok := variants[tone]
	if !ok || len(messages) == 0 {
		messages = variants[ToneNeutral]
	}
	if len(messages) == 0 {
		return ""
	}
	if len(messages) == 1 {
		return messages[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
