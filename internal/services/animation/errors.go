package animation

// GameError is a custom error type for animation errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       GameError = "config cannot be nil"
	ErrNilInput        GameError = "input cannot be nil"
	ErrNilRoundService GameError = "round service cannot be nil"
	ErrNilScheduler    GameError = "scheduler cannot be nil"
	ErrInvalidSteps    GameError = "steps cannot be negative"
	ErrInvalidDelay    GameError = "delay cannot be negative"
)
