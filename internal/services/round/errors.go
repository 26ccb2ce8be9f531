package round

// GameError is a custom error type for round engine errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilInput         GameError = "input cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrInvalidMaxRolls  GameError = "max rolls must be positive"
	ErrInvalidDieIndex  GameError = "die index out of range"
)
