package animation

import (
	"time"

	"github.com/KirkDiggler/tenzies/internal/common/clock"
	"github.com/KirkDiggler/tenzies/internal/models"
	"github.com/KirkDiggler/tenzies/internal/services/round"
)

const (
	// DefaultSteps is the number of transient frames shown per roll
	DefaultSteps = 10

	// DefaultDelay is the pause between frames
	DefaultDelay = 100 * time.Millisecond
)

// Config holds configuration for the animation sequencer
type Config struct {
	// Number of frames before the commit, DefaultSteps when zero
	Steps int

	// Pause between frames, DefaultDelay when zero
	Delay time.Duration

	// Service dependencies
	RoundService round.Service
	Scheduler    clock.Scheduler
}

// Frame is one cosmetic display state. It never reflects committed values
// for unheld dice.
type Frame struct {
	// Step is the zero-based frame number
	Step int

	Values [models.DiceCount]int
	Held   [models.DiceCount]bool
}

// Result is delivered once the roll has been committed and evaluated
type Result struct {
	// Status is the commit status
	Status models.Status

	Outcome   models.Outcome
	Round     models.Round
	BestScore *int
	NewBest   bool
}

// PlayInput contains the callbacks for one animation
type PlayInput struct {
	// OnFrame is called once per step with the transient dice
	OnFrame func(frame Frame)

	// OnComplete is called once after the commit. It is not called when the
	// round is reset while the animation runs.
	OnComplete func(result *Result)
}

// PlayOutput reports whether the animation started
type PlayOutput struct {
	Status models.Status

	// Epoch of the round the animation belongs to
	Epoch uint64
}
