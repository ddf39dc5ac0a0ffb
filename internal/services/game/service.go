// Package game defines the save orchestration interface: save creation,
// session lifecycle and every write that touches a player's save
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/pokemon-api/internal/services/game Service

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
)

// Service defines the game operations exposed to connected players.
// Errors are internal/errors values; errors.IsUserError separates caller
// mistakes from infrastructure failures.
type Service interface {
	// Save lifecycle
	CreateNewGame(ctx context.Context, input *CreateNewGameInput) (*CreateNewGameOutput, error)
	ListGameSaves(ctx context.Context, input *ListGameSavesInput) (*ListGameSavesOutput, error)

	// Session lifecycle
	StartGameSession(ctx context.Context, input *StartGameSessionInput) (*StartGameSessionOutput, error)
	EndGameSession(ctx context.Context, input *EndGameSessionInput) (*EndGameSessionOutput, error)
	RemoveGameSessions(ctx context.Context, input *RemoveGameSessionsInput) (*RemoveGameSessionsOutput, error)

	// Save data, scoped to the caller's active session
	GetGameSaveData(ctx context.Context, input *GetGameSaveDataInput) (*GetGameSaveDataOutput, error)
	SaveGameData(ctx context.Context, input *SaveGameDataInput) (*SaveGameDataOutput, error)

	// Owned pokemon, scoped to the caller's active session
	GetOwnedPokemonInDeck(ctx context.Context, input *GetOwnedPokemonInDeckInput) (*GetOwnedPokemonInDeckOutput, error)
	GetOwnedPokemonByID(ctx context.Context, input *GetOwnedPokemonByIDInput) (*GetOwnedPokemonByIDOutput, error)
	RefillDeckHp(ctx context.Context, input *RefillDeckHpInput) (*RefillDeckHpOutput, error)
	AddExperience(ctx context.Context, input *AddExperienceInput) (*AddExperienceOutput, error)

	// Encounters
	InGrassRandomPokemonEncounter(
		ctx context.Context,
		input *InGrassRandomPokemonEncounterInput,
	) (*InGrassRandomPokemonEncounterOutput, error)
}

// =============================================================================
// Save lifecycle
// =============================================================================

// CreateNewGameInput contains the new save's owner and character
type CreateNewGameInput struct {
	UserID        string
	CharacterName string
}

// CreateNewGameOutput contains the created save and its starting data
type CreateNewGameOutput struct {
	GameSave     *entities.GameSave
	GameSaveData *entities.GameSaveData
}

// ListGameSavesInput identifies the user whose saves to list
type ListGameSavesInput struct {
	UserID string
}

// ListGameSavesOutput contains the saves oldest first
type ListGameSavesOutput struct {
	GameSaves []*entities.GameSave
}

// =============================================================================
// Session lifecycle
// =============================================================================

// StartGameSessionInput binds a connection to one of the user's saves
type StartGameSessionInput struct {
	ConnectionID string
	UserID       string
	GameSaveID   string
}

// StartGameSessionOutput contains the new session
type StartGameSessionOutput struct {
	GameSession *entities.GameSession
	// TerminatedConnectionIDs lists connections that lost their session
	TerminatedConnectionIDs []string
}

// EndGameSessionInput identifies the connection whose session ends. Only the
// user owning the session may end it.
type EndGameSessionInput struct {
	ConnectionID string
	UserID       string
}

// EndGameSessionOutput contains the ended session
type EndGameSessionOutput struct {
	GameSession *entities.GameSession
}

// RemoveGameSessionsInput identifies the save whose sessions end
type RemoveGameSessionsInput struct {
	GameSaveID string
}

// RemoveGameSessionsOutput reports how many sessions ended
type RemoveGameSessionsOutput struct {
	Count int
}

// =============================================================================
// Save data
// =============================================================================

// GetGameSaveDataInput identifies the caller's session
type GetGameSaveDataInput struct {
	ConnectionID string
	UserID       string
}

// GetGameSaveDataOutput contains the persisted save data
type GetGameSaveDataOutput struct {
	GameSaveData *entities.GameSaveData
}

// SaveGameDataInput contains the payload to persist for the caller's session
type SaveGameDataInput struct {
	ConnectionID string
	UserID       string
	GameData     entities.GameData
}

// SaveGameDataOutput contains the stored save data with its new version
type SaveGameDataOutput struct {
	GameSaveData *entities.GameSaveData
}

// =============================================================================
// Owned pokemon
// =============================================================================

// GetOwnedPokemonInDeckInput identifies the caller's session. Deep attaches
// catalog data.
type GetOwnedPokemonInDeckInput struct {
	ConnectionID string
	UserID       string
	Deep         bool
}

// GetOwnedPokemonInDeckOutput contains the deck in deck order
type GetOwnedPokemonInDeckOutput struct {
	OwnedPokemon []*entities.OwnedPokemon
}

// GetOwnedPokemonByIDInput contains the pokemon to load. Every ID must belong
// to the session's save.
type GetOwnedPokemonByIDInput struct {
	ConnectionID    string
	UserID          string
	OwnedPokemonIDs []string
	Deep            bool
}

// GetOwnedPokemonByIDOutput contains the pokemon in request order
type GetOwnedPokemonByIDOutput struct {
	OwnedPokemon []*entities.OwnedPokemon
}

// RefillDeckHpInput identifies the caller's session
type RefillDeckHpInput struct {
	ConnectionID string
	UserID       string
}

// RefillDeckHpOutput contains the healed deck, enriched
type RefillDeckHpOutput struct {
	OwnedPokemon []*entities.OwnedPokemon
}

// AddExperienceInput grants experience to one of the save's pokemon
type AddExperienceInput struct {
	ConnectionID   string
	UserID         string
	OwnedPokemonID string
	Experience     int
}

// AddExperienceOutput contains the updated pokemon, enriched
type AddExperienceOutput struct {
	OwnedPokemon *entities.OwnedPokemon
	LevelsGained int
}

// =============================================================================
// Encounters
// =============================================================================

// InGrassRandomPokemonEncounterInput names the scene the player walks in
type InGrassRandomPokemonEncounterInput struct {
	ConnectionID string
	UserID       string
	SceneName    string
}

// InGrassRandomPokemonEncounterOutput contains the encountered pokemon, or nil
// when the roll produced no encounter
type InGrassRandomPokemonEncounterOutput struct {
	WildPokemon *entities.WildPokemon
}
