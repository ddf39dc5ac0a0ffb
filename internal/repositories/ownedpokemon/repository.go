// Package ownedpokemon provides persistence for captured pokemon
package ownedpokemon

//go:generate mockgen -destination=mock/mock_repository.go -package=ownedpokemonmock github.com/KirkDiggler/pokemon-api/internal/repositories/ownedpokemon Repository

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
)

// Repository stores owned pokemon without any catalog data attached
type Repository interface {
	// Create stores a new owned pokemon
	// Returns errors.InvalidArgument for missing fields
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an owned pokemon by ID
	// Returns errors.NotFound if it doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetMany retrieves owned pokemon by ID in request order. IDs that do not
	// exist are reported in MissingIDs rather than failing the call.
	GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error)

	// ListByGameSaveID returns every pokemon owned by a save
	ListByGameSaveID(ctx context.Context, input ListByGameSaveIDInput) (*ListByGameSaveIDOutput, error)

	// Update overwrites an owned pokemon
	// Returns errors.NotFound if it doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an owned pokemon
	// Returns errors.NotFound if it doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating an owned pokemon
type CreateInput struct {
	OwnedPokemon *entities.OwnedPokemon
}

// CreateOutput defines the output for creating an owned pokemon
type CreateOutput struct {
	OwnedPokemon *entities.OwnedPokemon
}

// GetInput defines the input for getting an owned pokemon
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an owned pokemon
type GetOutput struct {
	OwnedPokemon *entities.OwnedPokemon
}

// GetManyInput defines the input for getting several owned pokemon
type GetManyInput struct {
	IDs []string
}

// GetManyOutput defines the output for getting several owned pokemon
type GetManyOutput struct {
	OwnedPokemon []*entities.OwnedPokemon
	MissingIDs   []string
}

// ListByGameSaveIDInput defines the input for listing a save's pokemon
type ListByGameSaveIDInput struct {
	GameSaveID string
}

// ListByGameSaveIDOutput defines the output for listing a save's pokemon
type ListByGameSaveIDOutput struct {
	OwnedPokemon []*entities.OwnedPokemon
}

// UpdateInput defines the input for updating an owned pokemon
type UpdateInput struct {
	OwnedPokemon *entities.OwnedPokemon
}

// UpdateOutput defines the output for updating an owned pokemon
type UpdateOutput struct {
	OwnedPokemon *entities.OwnedPokemon
}

// DeleteInput defines the input for deleting an owned pokemon
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an owned pokemon
type DeleteOutput struct{}
