package game

import (
	"github.com/KirkDiggler/tenzies/internal/audio"
	"github.com/KirkDiggler/tenzies/internal/models"
	"github.com/KirkDiggler/tenzies/internal/services/animation"
	"github.com/KirkDiggler/tenzies/internal/services/messaging"
	"github.com/KirkDiggler/tenzies/internal/services/round"
)

// Config holds configuration for the game service
type Config struct {
	// Service dependencies
	RoundService     round.Service
	AnimationService animation.Service
	MessagingService messaging.Service

	// Presentation dependencies
	Presenter Presenter

	// AudioPlayer is optional; the game is silent without one
	AudioPlayer audio.Player
}

// RollInput contains parameters for rolling the dice
type RollInput struct{}

// RollOutput reports whether the roll started. The outcome arrives later
// through the presenter.
type RollOutput struct {
	Status models.Status

	// Message is the status text shown when the roll was rejected
	Message string
}

// ToggleHoldInput contains parameters for holding a die
type ToggleHoldInput struct {
	// Index of the die, 0..9
	Index int
}

// ToggleHoldOutput contains the result of holding a die
type ToggleHoldOutput struct {
	Status  models.Status
	Held    bool
	Message string
}

// ResetInput contains parameters for starting a new game
type ResetInput struct{}

// ResetOutput contains the fresh round
type ResetOutput struct {
	Round     models.Round
	BestScore *int
}

// RefreshInput contains parameters for redrawing
type RefreshInput struct{}

// RefreshOutput contains the state that was drawn
type RefreshOutput struct {
	Round     models.Round
	Outcome   models.Outcome
	BestScore *int
}
