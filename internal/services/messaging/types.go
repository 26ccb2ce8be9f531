package messaging

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tenzies/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// ParseTone converts a configuration value into a MessageTone
func ParseTone(value string) (MessageTone, error) {
	switch tone := MessageTone(strings.ToLower(strings.TrimSpace(value))); tone {
	case "":
		return ToneNeutral, nil
	case ToneNeutral, ToneFunny, ToneEncouraging:
		return tone, nil
	default:
		return "", fmt.Errorf("unknown message tone %q", value)
	}
}

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Tone used when a request does not ask for one
	DefaultTone MessageTone

	// Optional seed for picking message variants
	Seed int64
}

// GetStatusMessageInput contains parameters for the round status line
type GetStatusMessageInput struct {
	// Started is false until the first roll commits
	Started bool

	Outcome   models.Outcome
	RollCount int
	MaxRolls  int

	// NewBest is set when the win lowered the best score
	NewBest bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetStatusMessageOutput contains the status line
type GetStatusMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRejectionMessageInput contains parameters for a rejected action
type GetRejectionMessageInput struct {
	Status models.Status

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRejectionMessageOutput contains the rejection message
type GetRejectionMessageOutput struct {
	Message string
	Tone    MessageTone
}
