// Package entities contains the persisted and ephemeral game records
package entities

import (
	"slices"
	"time"
)

// Entity types reported through core.Entity
const (
	EntityTypeGameSave     = "game_save"
	EntityTypeGameSession  = "game_session"
	EntityTypeOwnedPokemon = "owned_pokemon"
	EntityTypeWildPokemon  = "wild_pokemon"
)

// GameSave is a player's persistent character slot
type GameSave struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CharacterName string    `json:"character_name"`
	DateCreated   time.Time `json:"date_created"`
	LastPlayed    time.Time `json:"last_played"`
}

// GetID returns the game save ID
func (g *GameSave) GetID() string {
	return g.ID
}

// GetType returns the entity type
func (g *GameSave) GetType() string {
	return EntityTypeGameSave
}

// GameSaveData is the mutable payload paired 1:1 with a GameSave
type GameSaveData struct {
	ID           string    `json:"id"`
	GameSaveID   string    `json:"game_save_id"`
	Version      int64     `json:"version"`
	DateModified time.Time `json:"date_modified"`
	GameData     GameData  `json:"game_data"`
}

// GameData is the part of GameSaveData a client may overwrite
type GameData struct {
	LastPlayedScene       string                `json:"last_played_scene"`
	LastPlayedLocationX   float64               `json:"last_played_location_x"`
	LastPlayedLocationY   float64               `json:"last_played_location_y"`
	DeckPokemon           []DeckPokemon         `json:"deck_pokemon"`
	UnlockedGameResources UnlockedGameResources `json:"unlocked_game_resources"`
}

// DeckPokemon is one slot of the active deck
type DeckPokemon struct {
	OwnedPokemonID string `json:"owned_pokemon_id"`
}

// UnlockedGameResources lists what the save has access to
type UnlockedGameResources struct {
	Scenes []string `json:"scenes"`
}

// HasScene reports whether the scene has been unlocked
func (u UnlockedGameResources) HasScene(scene string) bool {
	return slices.Contains(u.Scenes, scene)
}

// DeckPokemonIDs returns the owned pokemon IDs of the deck in deck order
func (d GameData) DeckPokemonIDs() []string {
	ids := make([]string, 0, len(d.DeckPokemon))
	for _, p := range d.DeckPokemon {
		ids = append(ids, p.OwnedPokemonID)
	}
	return ids
}

// SameDeckSet reports whether both decks reference the same set of owned
// pokemon, ignoring order and duplicates.
func SameDeckSet(a, b []DeckPokemon) bool {
	left := make(map[string]struct{}, len(a))
	for _, p := range a {
		left[p.OwnedPokemonID] = struct{}{}
	}
	right := make(map[string]struct{}, len(b))
	for _, p := range b {
		right[p.OwnedPokemonID] = struct{}{}
	}
	if len(left) != len(right) {
		return false
	}
	for id := range left {
		if _, ok := right[id]; !ok {
			return false
		}
	}
	return true
}
