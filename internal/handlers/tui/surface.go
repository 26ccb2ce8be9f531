package tui

import (
	"sync"

	"github.com/KirkDiggler/tenzies/internal/models"
	"github.com/KirkDiggler/tenzies/internal/services/game"
)

var _ game.Presenter = (*Surface)(nil)

// Surface is the presenter the game draws on; App renders it
type Surface struct {
	mu    sync.Mutex
	state surfaceState
}

type surfaceState struct {
	values       [models.DiceCount]int
	held         [models.DiceCount]bool
	status       string
	rollVisible  bool
	resetVisible bool
}

// NewSurface creates a surface with the roll action showing
func NewSurface() *Surface {
	return &Surface{
		state: surfaceState{rollVisible: true},
	}
}

// Render replaces the dice on screen
func (s *Surface) Render(values [models.DiceCount]int, held [models.DiceCount]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.values = values
	s.state.held = held
}

// ShowStatus replaces the status line
func (s *Surface) ShowStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.status = text
}

// SetRollActionVisible shows or hides the roll action
func (s *Surface) SetRollActionVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.rollVisible = visible
}

// SetResetActionVisible shows or hides the reset action
func (s *Surface) SetResetActionVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.resetVisible = visible
}

func (s *Surface) snapshot() surfaceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
