// Package enrichment attaches catalog data to stored pokemon records
package enrichment

//go:generate mockgen -destination=mock/mock_service.go -package=enrichmentmock github.com/KirkDiggler/pokemon-api/internal/services/enrichment Service

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
)

// Service resolves catalog resources for stored records. It never writes.
type Service interface {
	// GetDeepOwnedPokemon returns copies of the records with Pokemon,
	// PokemonSpecies and every non-empty move slot attached
	GetDeepOwnedPokemon(ctx context.Context, input *GetDeepOwnedPokemonInput) (*GetDeepOwnedPokemonOutput, error)

	// GetFullOwnedPokemon loads records by ID and enriches them
	// Returns errors.NotFound if any ID does not exist
	GetFullOwnedPokemon(ctx context.Context, input *GetFullOwnedPokemonInput) (*GetFullOwnedPokemonOutput, error)

	// GetPokemonAndSpecies fetches a pokemon and its species by pokedex number
	GetPokemonAndSpecies(ctx context.Context, input *GetPokemonAndSpeciesInput) (*GetPokemonAndSpeciesOutput, error)

	// GetMoveSet fetches up to four moves. Empty names leave a nil slot.
	GetMoveSet(ctx context.Context, input *GetMoveSetInput) (*GetMoveSetOutput, error)
}

// GetDeepOwnedPokemonInput contains the records to enrich
type GetDeepOwnedPokemonInput struct {
	OwnedPokemon []*entities.OwnedPokemon
}

// GetDeepOwnedPokemonOutput contains enriched copies in input order
type GetDeepOwnedPokemonOutput struct {
	OwnedPokemon []*entities.OwnedPokemon
}

// GetFullOwnedPokemonInput contains the IDs to load and enrich
type GetFullOwnedPokemonInput struct {
	IDs []string
}

// GetFullOwnedPokemonOutput contains enriched records in ID order
type GetFullOwnedPokemonOutput struct {
	OwnedPokemon []*entities.OwnedPokemon
}

// GetPokemonAndSpeciesInput identifies a pokemon by pokedex number
type GetPokemonAndSpeciesInput struct {
	PokedexID int
}

// GetPokemonAndSpeciesOutput contains the catalog pokemon and its species
type GetPokemonAndSpeciesOutput struct {
	Pokemon        *catalog.Pokemon
	PokemonSpecies *catalog.PokemonSpecies
}

// GetMoveSetInput contains move resource names, one per slot
type GetMoveSetInput struct {
	MoveSet [entities.MoveSlots]string
}

// GetMoveSetOutput contains the fetched moves in slot order
type GetMoveSetOutput struct {
	Moves [entities.MoveSlots]*catalog.Move
}
