package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/tenzies/internal/common/uuid UUID

// UUID generates identifiers for rounds
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random (v4) UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
