package game

import (
	"context"

	"github.com/KirkDiggler/tenzies/internal/models"
)

// Service defines the player-facing game actions
type Service interface {
	// Roll animates and commits a roll of every unheld die
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// ToggleHold holds or releases one die
	ToggleHold(ctx context.Context, input *ToggleHoldInput) (*ToggleHoldOutput, error)

	// Reset starts a new game, keeping the best score
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// Refresh pushes the whole current state to the presenter
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
}

//go:generate mockgen -package=mocks -destination=mocks/mock_presenter.go github.com/KirkDiggler/tenzies/internal/services/game Presenter

// Presenter is the surface the game draws on
type Presenter interface {
	Render(values [models.DiceCount]int, held [models.DiceCount]bool)
	ShowStatus(text string)
	SetRollActionVisible(visible bool)
	SetResetActionVisible(visible bool)
}
