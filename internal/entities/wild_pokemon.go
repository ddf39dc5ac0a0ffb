package entities

import "github.com/KirkDiggler/pokemon-api/internal/entities/catalog"

// WildPokemon is the result of an encounter roll. It only lives in memory;
// no repository accepts it.
type WildPokemon struct {
	ID                    string `json:"id"`
	SceneName             string `json:"scene_name"`
	PokemonResourceName   string `json:"pokemon_resource_name"`
	PokemonLevel          int    `json:"pokemon_level"`
	CurrentHp             int    `json:"current_hp"`
	MaxHp                 int    `json:"max_hp"`
	MoveOneResourceName   string `json:"move_one_resource_name,omitempty"`
	MoveTwoResourceName   string `json:"move_two_resource_name,omitempty"`
	MoveThreeResourceName string `json:"move_three_resource_name,omitempty"`
	MoveFourResourceName  string `json:"move_four_resource_name,omitempty"`

	Pokemon        *catalog.Pokemon        `json:"pokemon,omitempty"`
	PokemonSpecies *catalog.PokemonSpecies `json:"pokemon_species,omitempty"`
	MoveOne        *catalog.Move           `json:"move_one,omitempty"`
	MoveTwo        *catalog.Move           `json:"move_two,omitempty"`
	MoveThree      *catalog.Move           `json:"move_three,omitempty"`
	MoveFour       *catalog.Move           `json:"move_four,omitempty"`
}

// GetID returns the ephemeral ID
func (w *WildPokemon) GetID() string {
	return w.ID
}

// GetType returns the entity type
func (w *WildPokemon) GetType() string {
	return EntityTypeWildPokemon
}
