// Package gamesave provides persistence for game saves and their save data
package gamesave

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesavemock github.com/KirkDiggler/pokemon-api/internal/repositories/gamesave Repository

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
)

// Repository stores a GameSave together with its single GameSaveData.
// A successful call always returns output; errors.NotFound means the call
// succeeded but there was no data, any other error is a storage failure.
type Repository interface {
	// Create stores a save and its data as one unit
	// Returns errors.InvalidArgument for missing fields
	// Returns errors.AlreadyExists if the save ID is taken
	// Returns errors.ResourceExhausted if the user already has MaxPerUser saves
	// Returns errors.Aborted if the user's saves kept changing concurrently
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a save by ID
	// Returns errors.NotFound if the save doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByUserID returns the user's saves ordered by creation date
	ListByUserID(ctx context.Context, input ListByUserIDInput) (*ListByUserIDOutput, error)

	// CountByUserID returns how many saves the user has
	CountByUserID(ctx context.Context, input CountByUserIDInput) (*CountByUserIDOutput, error)

	// Update overwrites save metadata. The owner cannot change.
	// Returns errors.NotFound if the save doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a save and its data
	// Returns errors.NotFound if the save doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// GetData retrieves the data of a save
	// Returns errors.NotFound if the save has no data
	GetData(ctx context.Context, input GetDataInput) (*GetDataOutput, error)

	// UpdateData overwrites the save data if its stored version still equals
	// ExpectedVersion, and bumps the version
	// Returns errors.NotFound if the save has no data
	// Returns errors.Aborted if the stored version moved on
	UpdateData(ctx context.Context, input UpdateDataInput) (*UpdateDataOutput, error)
}

// CreateInput defines the input for creating a save
type CreateInput struct {
	GameSave     *entities.GameSave
	GameSaveData *entities.GameSaveData
	// MaxPerUser caps the saves of GameSave.UserID, zero disables the check
	MaxPerUser int
}

// CreateOutput defines the output for creating a save
type CreateOutput struct {
	GameSave     *entities.GameSave
	GameSaveData *entities.GameSaveData
}

// GetInput defines the input for getting a save
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a save
type GetOutput struct {
	GameSave *entities.GameSave
}

// ListByUserIDInput defines the input for listing a user's saves
type ListByUserIDInput struct {
	UserID string
}

// ListByUserIDOutput defines the output for listing a user's saves
type ListByUserIDOutput struct {
	GameSaves []*entities.GameSave
}

// CountByUserIDInput defines the input for counting a user's saves
type CountByUserIDInput struct {
	UserID string
}

// CountByUserIDOutput defines the output for counting a user's saves
type CountByUserIDOutput struct {
	Count int
}

// UpdateInput defines the input for updating a save
type UpdateInput struct {
	GameSave *entities.GameSave
}

// UpdateOutput defines the output for updating a save
type UpdateOutput struct {
	GameSave *entities.GameSave
}

// DeleteInput defines the input for deleting a save
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a save
type DeleteOutput struct{}

// GetDataInput defines the input for getting save data
type GetDataInput struct {
	GameSaveID string
}

// GetDataOutput defines the output for getting save data
type GetDataOutput struct {
	GameSaveData *entities.GameSaveData
}

// UpdateDataInput defines the input for updating save data
type UpdateDataInput struct {
	GameSaveData    *entities.GameSaveData
	ExpectedVersion int64
}

// UpdateDataOutput defines the output for updating save data
type UpdateDataOutput struct {
	GameSaveData *entities.GameSaveData
}
