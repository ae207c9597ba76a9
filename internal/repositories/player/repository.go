// Package player provides the interface for player record persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/rpg-player/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
)

// Repository is the document store behind the player cache
type Repository interface {
	// Get retrieves a player record
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the player has no record yet
	// Returns errors.Unavailable when the store cannot be reached
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the full record, creating it if needed
	// Returns errors.InvalidArgument for a nil record or empty ID
	// Returns errors.Unavailable when the store cannot be reached
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a player record. Deleting a missing record succeeds.
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.Unavailable when the store cannot be reached
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a player
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Record *rpg.Record
}

// SaveInput defines the input for saving a player
type SaveInput struct {
	Record *rpg.Record
}

// SaveOutput defines the output for saving a player
type SaveOutput struct{}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct {
	// Existed is false when there was nothing to delete
	Existed bool
}
