package v1alpha1

import "github.com/KirkDiggler/pokemon-api/internal/entities"

type createNewGameRequest struct {
	CharacterName string `json:"character_name"`
}

type createNewGameResponse struct {
	GameSave     *entities.GameSave     `json:"game_save"`
	GameSaveData *entities.GameSaveData `json:"game_save_data"`
}

type listGameSavesResponse struct {
	GameSaves []*entities.GameSave `json:"game_saves"`
}

type startGameSessionRequest struct {
	GameSaveID string `json:"game_save_id"`
}

type startGameSessionResponse struct {
	GameSession             *entities.GameSession `json:"game_session"`
	TerminatedConnectionIDs []string              `json:"terminated_connection_ids"`
}

type gameSessionResponse struct {
	GameSession *entities.GameSession `json:"game_session"`
}

type gameSaveDataResponse struct {
	GameSaveData *entities.GameSaveData `json:"game_save_data"`
}

type saveGameDataRequest struct {
	GameData entities.GameData `json:"game_data"`
}

type deckRequest struct {
	Deep bool `json:"deep"`
}

type ownedPokemonByIDRequest struct {
	OwnedPokemonIDs []string `json:"owned_pokemon_ids"`
	Deep            bool     `json:"deep"`
}

type ownedPokemonListResponse struct {
	OwnedPokemon []*entities.OwnedPokemon `json:"owned_pokemon"`
}

type addExperienceRequest struct {
	OwnedPokemonID string `json:"owned_pokemon_id"`
	Experience     int    `json:"experience"`
}

type addExperienceResponse struct {
	OwnedPokemon *entities.OwnedPokemon `json:"owned_pokemon"`
	LevelsGained int                    `json:"levels_gained"`
}

type encounterRequest struct {
	SceneName string `json:"scene_name"`
}

type encounterResponse struct {
	WildPokemon *entities.WildPokemon `json:"wild_pokemon"`
}

// empty is the request of methods that only read caller metadata
type empty struct{}
