package dice

import (
	"math/rand"
	"sync"
	"time"
)

// Sides is the number of faces on a Tenzies die
const Sides = 6

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/tenzies/internal/dice Roller

// Roller draws the next face of a die
type Roller interface {
	// Roll returns a uniformly random value in 1..sides
	Roll(sides int) int
}

// RandomRoller provides dice rolling functionality backed by math/rand
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = Sides
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}
