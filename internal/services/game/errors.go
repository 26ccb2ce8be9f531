package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilInput            GameError = "input cannot be nil"
	ErrNilRoundService     GameError = "round service cannot be nil"
	ErrNilAnimationService GameError = "animation service cannot be nil"
	ErrNilMessagingService GameError = "messaging service cannot be nil"
	ErrNilPresenter        GameError = "presenter cannot be nil"
)
