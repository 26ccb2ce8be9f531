package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetStatusMessage returns the status line for the current round
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetRejectionMessage returns a user-friendly message for a rejected action
	GetRejectionMessage(ctx context.Context, input *GetRejectionMessageInput) (*GetRejectionMessageOutput, error)
}
