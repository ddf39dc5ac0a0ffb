// Package catalog holds the read-only resources served by the Pokémon
// catalog (PokeAPI). Field names and JSON tags mirror the catalog payloads.
package catalog

// StatNameHP is the catalog name of the hit point stat
const StatNameHP = "hp"

// Resource kinds as used in catalog URLs
const (
	KindPokemon        = "pokemon"
	KindPokemonSpecies = "pokemon-species"
	KindMove           = "move"
)

// NamedAPIResource is a reference to another catalog resource
type NamedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is a catalog pokemon entry
type Pokemon struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	BaseExperience int              `json:"base_experience"`
	Height         int              `json:"height"`
	Weight         int              `json:"weight"`
	Order          int              `json:"order"`
	IsDefault      bool             `json:"is_default"`
	Species        NamedAPIResource `json:"species"`
	Stats          []PokemonStat    `json:"stats"`
	Moves          []PokemonMove    `json:"moves"`
	Types          []PokemonType    `json:"types"`
	Sprites        PokemonSprites   `json:"sprites"`
}

// Stat returns the stat entry with the given name
func (p *Pokemon) Stat(name string) (PokemonStat, bool) {
	if p == nil {
		return PokemonStat{}, false
	}
	for _, s := range p.Stats {
		if s.Stat.Name == name {
			return s, true
		}
	}
	return PokemonStat{}, false
}

// PokemonStat is a base stat value of a pokemon
type PokemonStat struct {
	BaseStat int              `json:"base_stat"`
	Effort   int              `json:"effort"`
	Stat     NamedAPIResource `json:"stat"`
}

// PokemonMove is a move a pokemon can learn along with how it learns it
type PokemonMove struct {
	Move                NamedAPIResource     `json:"move"`
	VersionGroupDetails []PokemonMoveVersion `json:"version_group_details"`
}

// LearnableAt reports whether any learn method teaches the move at or below level
func (m PokemonMove) LearnableAt(level int) bool {
	for _, d := range m.VersionGroupDetails {
		if d.LevelLearnedAt <= level {
			return true
		}
	}
	return false
}

// PokemonMoveVersion describes one way of learning a move
type PokemonMoveVersion struct {
	LevelLearnedAt  int              `json:"level_learned_at"`
	MoveLearnMethod NamedAPIResource `json:"move_learn_method"`
	VersionGroup    NamedAPIResource `json:"version_group"`
}

// PokemonType is one of the (up to two) types of a pokemon
type PokemonType struct {
	Slot int              `json:"slot"`
	Type NamedAPIResource `json:"type"`
}

// PokemonSprites holds the default sprite URLs
type PokemonSprites struct {
	FrontDefault string `json:"front_default"`
	BackDefault  string `json:"back_default"`
	FrontShiny   string `json:"front_shiny"`
	BackShiny    string `json:"back_shiny"`
}

// PokemonSpecies is a catalog species entry
type PokemonSpecies struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Order         int              `json:"order"`
	BaseHappiness int              `json:"base_happiness"`
	CaptureRate   int              `json:"capture_rate"`
	IsBaby        bool             `json:"is_baby"`
	IsLegendary   bool             `json:"is_legendary"`
	IsMythical    bool             `json:"is_mythical"`
	GrowthRate    NamedAPIResource `json:"growth_rate"`
	Habitat       NamedAPIResource `json:"habitat"`
	Names         []Name           `json:"names"`
}

// LevelsSlowly reports whether the species uses the slow experience curve
func (s *PokemonSpecies) LevelsSlowly() bool {
	return s != nil && (s.IsLegendary || s.IsMythical)
}

// Name is a localized name
type Name struct {
	Name     string           `json:"name"`
	Language NamedAPIResource `json:"language"`
}

// Move is a catalog move entry
type Move struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Accuracy    *int             `json:"accuracy"`
	Power       *int             `json:"power"`
	PP          *int             `json:"pp"`
	Priority    int              `json:"priority"`
	Type        NamedAPIResource `json:"type"`
	DamageClass NamedAPIResource `json:"damage_class"`
}
