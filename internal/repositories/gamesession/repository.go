// Package gamesession provides persistence for active game sessions
package gamesession

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesessionmock github.com/KirkDiggler/pokemon-api/internal/repositories/gamesession Repository

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
)

// Repository stores the sessions binding connections to game saves. A save
// has at most one session; a connection is bound to at most one save.
type Repository interface {
	// Create stores a session, terminating any other session of the same save
	// and detaching the connection from the save it was bound to before
	// Returns errors.InvalidArgument for missing fields
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves the session of a connection
	// Returns errors.NotFound if the connection has no session
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByGameSaveID returns the sessions of a save
	ListByGameSaveID(ctx context.Context, input ListByGameSaveIDInput) (*ListByGameSaveIDOutput, error)

	// Delete removes the session of a connection
	// Returns errors.NotFound if the connection has no session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// DeleteByGameSaveID removes every session of a save. Zero is a valid count.
	DeleteByGameSaveID(ctx context.Context, input DeleteByGameSaveIDInput) (*DeleteByGameSaveIDOutput, error)
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	GameSession *entities.GameSession
}

// CreateOutput defines the output for creating a session
type CreateOutput struct {
	GameSession *entities.GameSession
	// TerminatedConnectionIDs lists connections whose session was replaced
	TerminatedConnectionIDs []string
}

// GetInput defines the input for getting a session
type GetInput struct {
	ConnectionID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	GameSession *entities.GameSession
}

// ListByGameSaveIDInput defines the input for listing a save's sessions
type ListByGameSaveIDInput struct {
	GameSaveID string
}

// ListByGameSaveIDOutput defines the output for listing a save's sessions
type ListByGameSaveIDOutput struct {
	GameSessions []*entities.GameSession
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ConnectionID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct {
	GameSession *entities.GameSession
}

// DeleteByGameSaveIDInput defines the input for deleting a save's sessions
type DeleteByGameSaveIDInput struct {
	GameSaveID string
}

// DeleteByGameSaveIDOutput defines the output for deleting a save's sessions
type DeleteByGameSaveIDOutput struct {
	Count int
}
