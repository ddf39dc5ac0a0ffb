package enrichment

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// loader memoizes catalog lookups for the lifetime of one request.
// Concurrent lookups of the same resource share a single fetch.
type loader struct {
	client pokeapi.Client
	group  singleflight.Group

	mu   sync.Mutex
	memo map[string]any
}

func newLoader(client pokeapi.Client) *loader {
	return &loader{
		client: client,
		memo:   make(map[string]any),
	}
}

func (l *loader) pokemon(ctx context.Context, key pokeapi.Key) (*catalog.Pokemon, error) {
	return load(ctx, l, catalog.KindPokemon, key, l.client.GetPokemon)
}

func (l *loader) species(ctx context.Context, key pokeapi.Key) (*catalog.PokemonSpecies, error) {
	return load(ctx, l, catalog.KindPokemonSpecies, key, l.client.GetPokemonSpecies)
}

func (l *loader) move(ctx context.Context, key pokeapi.Key) (*catalog.Move, error) {
	return load(ctx, l, catalog.KindMove, key, l.client.GetMove)
}

func (l *loader) cached(memoKey string) (any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.memo[memoKey]
	return v, ok
}

func (l *loader) store(memoKey string, v any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.memo[memoKey] = v
}

func load[T any](
	ctx context.Context,
	l *loader,
	kind string,
	key pokeapi.Key,
	fetch func(context.Context, pokeapi.Key) (*T, error),
) (*T, error) {
	memoKey := kind + ":" + key.String()
	if v, ok := l.cached(memoKey); ok {
		return v.(*T), nil
	}

	v, err, _ := l.group.Do(memoKey, func() (any, error) {
		// a flight that finished after the check above has already stored
		if v, ok := l.cached(memoKey); ok {
			return v, nil
		}
		res, err := fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		if res == nil {
			return nil, errors.Internalf("catalog returned no %s for %s", kind, key)
		}
		l.store(memoKey, res)
		return res, nil
	})
	if err != nil {
		return nil, errors.AsServerError(err, "failed to fetch "+kind+" "+key.String()).
			WithMeta("kind", kind).
			WithMeta("key", key.String())
	}

	return v.(*T), nil
}
