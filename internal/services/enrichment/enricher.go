package enrichment

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/ownedpokemon"
)

// DefaultMaxConcurrentFetches bounds catalog requests in flight per call
const DefaultMaxConcurrentFetches = 8

// Config holds the dependencies for the enricher
type Config struct {
	Client           pokeapi.Client
	OwnedPokemonRepo ownedpokemon.Repository
	// MaxConcurrentFetches (optional, defaults to 8)
	MaxConcurrentFetches int
}

// Validate validates the config and sets defaults
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.OwnedPokemonRepo == nil {
		vb.RequiredField("OwnedPokemonRepo")
	}
	if cfg.MaxConcurrentFetches < 0 {
		vb.Field("MaxConcurrentFetches", "must not be negative")
	}
	if cfg.MaxConcurrentFetches == 0 {
		cfg.MaxConcurrentFetches = DefaultMaxConcurrentFetches
	}
	return vb.Build()
}

// Enricher implements Service on top of the catalog client
type Enricher struct {
	client      pokeapi.Client
	ownedRepo   ownedpokemon.Repository
	concurrency int
}

var _ Service = (*Enricher)(nil)

// New creates an enricher
func New(cfg *Config) (*Enricher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid enrichment config")
	}

	return &Enricher{
		client:      cfg.Client,
		ownedRepo:   cfg.OwnedPokemonRepo,
		concurrency: cfg.MaxConcurrentFetches,
	}, nil
}

func (e *Enricher) group(ctx context.Context) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	return g, gctx
}

// GetDeepOwnedPokemon attaches catalog data to copies of the records
func (e *Enricher) GetDeepOwnedPokemon(
	ctx context.Context,
	input *GetDeepOwnedPokemonInput,
) (*GetDeepOwnedPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := make([]*entities.OwnedPokemon, len(input.OwnedPokemon))
	for i, owned := range input.OwnedPokemon {
		if owned == nil {
			return nil, errors.InvalidArgumentf("owned pokemon %d is nil", i)
		}
		out[i] = owned.Persisted()
	}

	l := newLoader(e.client)
	g, gctx := e.group(ctx)
	moves := make([][entities.MoveSlots]*catalog.Move, len(out))

	for i, owned := range out {
		g.Go(func() error {
			pokemon, err := l.pokemon(gctx, pokeapi.SlugKey(owned.PokemonResourceName))
			if err != nil {
				return err
			}

			speciesName := pokemon.Species.Name
			if speciesName == "" {
				speciesName = owned.PokemonResourceName
			}
			species, err := l.species(gctx, pokeapi.SlugKey(speciesName))
			if err != nil {
				return err
			}

			owned.Pokemon = pokemon
			owned.PokemonSpecies = species
			return nil
		})

		for slot, name := range owned.MoveResourceNames() {
			if name == "" {
				continue
			}
			g.Go(func() error {
				move, err := l.move(gctx, pokeapi.SlugKey(name))
				if err != nil {
					return err
				}
				moves[i][slot] = move
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		slog.DebugContext(ctx, "failed to enrich owned pokemon",
			"count", len(out),
			"error", err)
		return nil, err
	}

	for i, owned := range out {
		owned.SetMoves(moves[i])
	}

	return &GetDeepOwnedPokemonOutput{OwnedPokemon: out}, nil
}

// GetFullOwnedPokemon loads the records by ID then enriches them
func (e *Enricher) GetFullOwnedPokemon(
	ctx context.Context,
	input *GetFullOwnedPokemonInput,
) (*GetFullOwnedPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.IDs) == 0 {
		return &GetFullOwnedPokemonOutput{OwnedPokemon: []*entities.OwnedPokemon{}}, nil
	}

	found, err := e.ownedRepo.GetMany(ctx, ownedpokemon.GetManyInput{IDs: input.IDs})
	if err != nil {
		return nil, errors.AsServerError(err, "failed to load owned pokemon")
	}
	if len(found.MissingIDs) > 0 {
		return nil, errors.NotFoundf("owned pokemon not found: %s", strings.Join(found.MissingIDs, ", ")).
			WithMeta("missing_ids", found.MissingIDs)
	}

	deep, err := e.GetDeepOwnedPokemon(ctx, &GetDeepOwnedPokemonInput{OwnedPokemon: found.OwnedPokemon})
	if err != nil {
		return nil, err
	}

	return &GetFullOwnedPokemonOutput{OwnedPokemon: deep.OwnedPokemon}, nil
}

// GetPokemonAndSpecies fetches both resources of a pokedex number in parallel
func (e *Enricher) GetPokemonAndSpecies(
	ctx context.Context,
	input *GetPokemonAndSpeciesInput,
) (*GetPokemonAndSpeciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PokedexID < 1 {
		return nil, errors.InvalidArgumentf("invalid pokedex id %d", input.PokedexID)
	}

	l := newLoader(e.client)
	g, gctx := e.group(ctx)
	key := pokeapi.IDKey(input.PokedexID)
	out := &GetPokemonAndSpeciesOutput{}

	g.Go(func() error {
		pokemon, err := l.pokemon(gctx, key)
		out.Pokemon = pokemon
		return err
	})
	g.Go(func() error {
		species, err := l.species(gctx, key)
		out.PokemonSpecies = species
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// GetMoveSet fetches the named moves in parallel
func (e *Enricher) GetMoveSet(ctx context.Context, input *GetMoveSetInput) (*GetMoveSetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	l := newLoader(e.client)
	g, gctx := e.group(ctx)
	out := &GetMoveSetOutput{}

	for slot, name := range input.MoveSet {
		if name == "" {
			continue
		}
		g.Go(func() error {
			move, err := l.move(gctx, pokeapi.SlugKey(name))
			if err != nil {
				return err
			}
			out.Moves[slot] = move
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
