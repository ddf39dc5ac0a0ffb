package entities

import "github.com/KirkDiggler/pokemon-api/internal/entities/catalog"

// MoveSlots is the number of moves a pokemon can know
const MoveSlots = 4

// OwnedPokemon is a persisted capture record. Pokemon, PokemonSpecies and the
// Move fields are attached by deep reads and are never stored.
type OwnedPokemon struct {
	ID                    string `json:"id"`
	GameSaveID            string `json:"game_save_id"`
	PokemonResourceName   string `json:"pokemon_resource_name"`
	PokemonLevel          int    `json:"pokemon_level"`
	CurrentExperience     int    `json:"current_experience"`
	CurrentHp             int    `json:"current_hp"`
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

// GetID returns the owned pokemon ID
func (o *OwnedPokemon) GetID() string {
	return o.ID
}

// GetType returns the entity type
func (o *OwnedPokemon) GetType() string {
	return EntityTypeOwnedPokemon
}

// MoveResourceNames returns the four move slots in order
func (o *OwnedPokemon) MoveResourceNames() [MoveSlots]string {
	return [MoveSlots]string{
		o.MoveOneResourceName,
		o.MoveTwoResourceName,
		o.MoveThreeResourceName,
		o.MoveFourResourceName,
	}
}

// SetMoves attaches fetched moves in slot order
func (o *OwnedPokemon) SetMoves(moves [MoveSlots]*catalog.Move) {
	o.MoveOne, o.MoveTwo, o.MoveThree, o.MoveFour = moves[0], moves[1], moves[2], moves[3]
}

// Clone returns a shallow copy. Catalog pointers are shared; they are
// read-only.
func (o *OwnedPokemon) Clone() *OwnedPokemon {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

// Persisted returns a copy without any enrichment attached
func (o *OwnedPokemon) Persisted() *OwnedPokemon {
	if o == nil {
		return nil
	}
	c := *o
	c.Pokemon = nil
	c.PokemonSpecies = nil
	c.SetMoves([MoveSlots]*catalog.Move{})
	return &c
}

// IsEnriched reports whether the catalog pokemon and species are attached
func (o *OwnedPokemon) IsEnriched() bool {
	return o != nil && o.Pokemon != nil && o.PokemonSpecies != nil
}
