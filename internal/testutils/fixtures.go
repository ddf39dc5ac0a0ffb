package testutils

import (
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Red"
	// TestStarterScene is unlocked in every fixture save
	TestStarterScene = "pallet-town"
	// TestWildScene is the second unlocked scene of fixture saves
	TestWildScene = "route-1"
)

// FixtureTime is the modification time stamped on fixtures
var FixtureTime = time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)

// CreateTestGameSaveData creates save data at version 3 holding deckIDs in
// deck order, with the starter scene and route-1 unlocked
func CreateTestGameSaveData(gameSaveID string, deckIDs ...string) *entities.GameSaveData {
	deck := make([]entities.DeckPokemon, 0, len(deckIDs))
	for _, id := range deckIDs {
		deck = append(deck, entities.DeckPokemon{OwnedPokemonID: id})
	}
	return &entities.GameSaveData{
		ID:           "data_1",
		GameSaveID:   gameSaveID,
		Version:      3,
		DateModified: FixtureTime,
		GameData: entities.GameData{
			LastPlayedScene: TestStarterScene,
			DeckPokemon:     deck,
			UnlockedGameResources: entities.UnlockedGameResources{
				Scenes: []string{TestStarterScene, TestWildScene},
			},
		},
	}
}

// CreateTestOwnedPokemon creates a level 5 pikachu knowing thunder-shock
func CreateTestOwnedPokemon(id, gameSaveID string) *entities.OwnedPokemon {
	return &entities.OwnedPokemon{
		ID:                  id,
		GameSaveID:          gameSaveID,
		PokemonResourceName: "pikachu",
		PokemonLevel:        5,
		CurrentHp:           10,
		MoveOneResourceName: "thunder-shock",
	}
}
