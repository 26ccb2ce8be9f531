package animation

import "context"

// Service plays the rolling animation that precedes every commit
type Service interface {
	// Play starts a roll animation and commits the roll when it finishes
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// Active reports whether an animation is running
	Active() bool
}
