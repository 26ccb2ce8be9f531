package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Cue names a sound effect
type Cue string

const (
	// CueRoll plays when the dice start rolling
	CueRoll Cue = "roll"

	// CueWin plays when all ten dice match
	CueWin Cue = "win"

	// CueLose plays when the last roll is used without a win
	CueLose Cue = "lose"
)

// ErrUnknownCue is returned for cues a player has no sound for
var ErrUnknownCue = errors.New("sound not found")

//go:generate mockgen -package=mocks -destination=mocks/mock_player.go github.com/KirkDiggler/tenzies/internal/audio Player

// Player plays sound cues. Callers treat failures as non-fatal.
type Player interface {
	Play(cue Cue) error
}

// Bell plays cues as terminal bells, one ring for a roll and more for the
// end of a round.
type Bell struct {
	mu    sync.Mutex
	out   io.Writer
	rings map[Cue]int
}

// NewBell creates a bell player writing to out
func NewBell(out io.Writer) *Bell {
	return &Bell{
		out: out,
		rings: map[Cue]int{
			CueRoll: 1,
			CueWin:  2,
			CueLose: 3,
		},
	}
}

// Play rings the bell for the cue
func (b *Bell) Play(cue Cue) error {
	n, ok := b.rings[cue]
	if !ok {
		return fmt.Errorf("cue %q: %w", cue, ErrUnknownCue)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := b.out.Write(bytes.Repeat([]byte{'\a'}, n)); err != nil {
		return fmt.Errorf("failed to ring bell for %s: %w", cue, err)
	}
	return nil
}

// Silent is a Player for games with sound turned off
type Silent struct{}

// Play does nothing
func (Silent) Play(cue Cue) error {
	return nil
}
